package persist

import (
	"context"
	"errors"
	"testing"
)

// The identity guards reject before any collection access, so a gateway
// with no collection behind it is enough to exercise them.
func TestMongoGatewayRequiresIdentity(t *testing.T) {
	gw := NewMongoGateway(nil)
	ctx := context.Background()

	cases := []struct {
		name string
		call func() error
	}{
		{"Save", func() error {
			it := sampleItinerary()
			it.UserID = ""
			_, err := gw.Save(ctx, it)
			return err
		}},
		{"Load", func() error {
			_, err := gw.Load(ctx, "", "trip1")
			return err
		}},
		{"LoadLatest", func() error {
			_, err := gw.LoadLatest(ctx, "")
			return err
		}},
		{"List", func() error {
			_, err := gw.List(ctx, "")
			return err
		}},
		{"Delete", func() error {
			return gw.Delete(ctx, "", "trip1")
		}},
	}
	for _, c := range cases {
		if err := c.call(); !errors.Is(err, ErrUnauthenticated) {
			t.Errorf("%s without a user: expected ErrUnauthenticated, got %v", c.name, err)
		}
	}
}
