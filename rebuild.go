package assetmin

import (
	"context"

	"github.com/thatguystone/assetmin/watch"
)

// Watch runs a Build, then rebuilds every time one of the source assets
// changes, until ctx is done. Failed builds are logged through opts.Logf and
// don't stop the watch.
//
// If non-nil, built is called after every build with its outcome.
func Watch(ctx context.Context, opts Opts, built func(Result, error)) error {
	err := opts.init()
	if err != nil {
		return err
	}

	build := func() {
		res, err := Build(opts)
		if err != nil {
			opts.Logf("build failed: %v", err)
		}

		if built != nil {
			built(res, err)
		}
	}

	w, err := watch.New(opts.Src)
	if err != nil {
		return err
	}

	defer w.Stop()

	var names []string
	for _, k := range Kinds {
		names = append(names, opts.Names.Get(k))
	}

	changed := make(chan struct{}, 1)
	w.Notify(watch.WatcherFunc(func(evs watch.Events) {
		if !evs.HasBase(names...) {
			return
		}

		select {
		case changed <- struct{}{}:
		default:
		}
	}))

	build()
	opts.Logf("watching %s for changes", opts.Src)

	for {
		select {
		case <-ctx.Done():
			return nil

		case <-changed:
			opts.Logf("change detected, rebuilding...")
			build()
		}
	}
}
