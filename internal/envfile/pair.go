package envfile

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// LoadPair loads first and second concurrently. The first error wins.
func LoadPair(ctx context.Context, first, second string) (*File, *File, error) {
	var a, b *File
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		f, err := Load(first)
		a = f
		return err
	})
	g.Go(func() error {
		f, err := Load(second)
		b = f
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return a, b, nil
}
