// Package ws adapts websocket connections to signalz streams.
package ws

import (
	"context"
	"fmt"

	"github.com/gorilla/websocket"
	"github.com/zoobzio/signalz"
)

// JSONStream returns a stream backed by a websocket connection. Each
// subscription dials its own connection via connect and emits every JSON
// message decoded into T. A normal closure completes the stream; any other
// read failure errors it. Canceling the subscription closes the connection
// without a terminal signal.
//
// Example:
//
//	ticks := ws.JSONStream[Tick](func(ctx context.Context) (*websocket.Conn, error) {
//		conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
//		return conn, err
//	})
//
//	sub := ticks.Subscribe(signalz.Observer[Tick]{
//		OnValue: func(t Tick) { fmt.Println(t.Symbol, t.Price) },
//	})
//	defer sub.Cancel()
func JSONStream[T any](connect func(ctx context.Context) (*websocket.Conn, error)) signalz.Stream[T] {
	return signalz.StreamFunc[T](func(o signalz.Observer[T]) signalz.Subscription {
		ctx, cancel := context.WithCancel(context.Background())

		conn, err := connect(ctx)
		if err != nil {
			cancel()
			if o.OnError != nil {
				o.OnError(fmt.Errorf("ws: connect: %w", err))
			}
			sub := signalz.NewSubscription(nil)
			sub.Cancel()
			return sub
		}

		sub := signalz.NewSubscription(func() {
			cancel()
			conn.Close() //nolint:errcheck // teardown path
		})

		go func() {
			for {
				var msg T
				if err := conn.ReadJSON(&msg); err != nil {
					if !sub.Active() {
						// Canceled: the read failed because we closed
						// the connection ourselves. Stay silent.
						return
					}
					if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
						if o.OnComplete != nil {
							o.OnComplete()
						}
					} else if o.OnError != nil {
						o.OnError(fmt.Errorf("ws: read: %w", err))
					}
					sub.Cancel()
					return
				}
				if !sub.Active() {
					return
				}
				if o.OnValue != nil {
					o.OnValue(msg)
				}
			}
		}()

		return sub
	})
}
