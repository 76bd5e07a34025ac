package watch

import (
	"testing"
	"time"

	"github.com/thatguystone/cog/check"
)

type testWatcher struct {
	ch chan Events
}

func (w testWatcher) Changed(evs Events) {
	w.ch <- evs
}

func TestWatchBasic(t *testing.T) {
	c := check.New(t)

	fs, clean := c.FS()
	defer clean()

	fs.SWriteFile("/keep", "")

	w, err := New(fs.Path("/"))
	c.Must.Nil(err)
	defer w.Stop()

	tw := testWatcher{ch: make(chan Events, 10)}
	w.Notify(tw)

	fs.SWriteFile("/test.ext", "test")

	select {
	case evs := <-tw.ch:
		c.True(evs.HasBase("nope", "test.ext"))
		c.False(evs.HasBase("keep"))

	case <-time.After(time.Second):
		c.Fatal("did not get events")
	}
}

func TestWatchBatches(t *testing.T) {
	c := check.New(t)

	fs, clean := c.FS()
	defer clean()

	w, err := New(fs.Path("/"))
	c.Must.Nil(err)
	defer w.Stop()

	tw := testWatcher{ch: make(chan Events, 10)}
	w.Notify(tw)

	fs.SWriteFile("/index.html", "a")
	fs.SWriteFile("/styles.css", "b")

	var got Events
	c.Until(time.Second, func() bool {
		select {
		case evs := <-tw.ch:
			got = append(got, evs...)
		default:
		}

		return got.HasBase("index.html") && got.HasBase("styles.css")
	})
}

func TestWatchFunc(t *testing.T) {
	c := check.New(t)

	fs, clean := c.FS()
	defer clean()

	fs.SWriteFile("/keep", "")

	w, err := New(fs.Path("/"))
	c.Must.Nil(err)
	defer w.Stop()

	ch := make(chan Events, 10)
	w.Notify(WatcherFunc(func(evs Events) {
		ch <- evs
	}))

	fs.SWriteFile("/app.js", "x")

	select {
	case evs := <-ch:
		c.True(evs.HasBase("app.js"))

	case <-time.After(time.Second):
		c.Fatal("did not get events")
	}
}

func TestWatchMissing(t *testing.T) {
	c := check.New(t)

	fs, clean := c.FS()
	defer clean()

	_, err := New(fs.Path("/does/not/exist"))
	c.NotNil(err)
}
