package spatial

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/sync/errgroup"
)

// LoadAll decodes every report file concurrently, one goroutine per path.
// The load is fail-fast: the first read or decode failure cancels the rest
// and the aggregate result is that failure, even when other channels decoded
// cleanly. The returned map is keyed by channel name.
func LoadAll(ctx context.Context, paths []string, opts Options, log *slog.Logger) (map[string]*SpatialBinary, error) {
	g, ctx := errgroup.WithContext(ctx)
	decoded := make([]*SpatialBinary, len(paths))

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			name := ChannelName(path)
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("spatial: loading channel %q: %w", name, err)
			}
			sb, err := Decode(name, data, opts)
			if err != nil {
				return err
			}
			log.Debug("channel decoded", "channel", name,
				"timesteps", sb.Len(), "min", sb.ValueMin, "max", sb.ValueMax)
			decoded[i] = sb
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	channels := make(map[string]*SpatialBinary, len(decoded))
	for _, sb := range decoded {
		channels[sb.ChannelName] = sb
	}
	return channels, nil
}
