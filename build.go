package assetmin

import (
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/thatguystone/cog/cfs"
	"golang.org/x/sync/errgroup"
)

// defaultLogger backs Opts with no Logf
var defaultLogger = log.New(os.Stderr, "[assetmin] ", log.LstdFlags)

// Opts configure a Build
type Opts struct {
	Src   string // Directory holding the source assets
	Dst   string // Directory minified assets are written to
	Names Names  // Asset file names. Empty names fall back to DefaultNames.
	Logf  func(string, ...interface{})
}

// An Asset describes one minified asset
type Asset struct {
	Kind      Kind
	Src       string // Path to the source file
	Dst       string // Path to the minified file
	SrcSize   int    // Size of the source, in bytes
	DstSize   int    // Size of the minified output, in bytes
	Unchanged bool   // If Dst already had the minified content and wasn't touched
}

// Result is what a successful Build produced
type Result struct {
	Assets []Asset // In the order of Kinds
}

// Get gets the Asset for the given Kind
func (res Result) Get(k Kind) (a Asset, ok bool) {
	for _, a = range res.Assets {
		if a.Kind == k {
			return a, true
		}
	}

	return Asset{}, false
}

func (opts *Opts) init() error {
	opts.Names = opts.Names.WithDefaults()

	if opts.Logf == nil {
		opts.Logf = defaultLogger.Printf
	}

	if opts.Src == "" {
		return errors.New("no source directory given")
	}

	if opts.Dst == "" {
		return errors.New("no destination directory given")
	}

	src, err := filepath.Abs(opts.Src)
	if err != nil {
		return errors.Wrap(err, "invalid source directory")
	}

	dst, err := filepath.Abs(opts.Dst)
	if err != nil {
		return errors.Wrap(err, "invalid destination directory")
	}

	if src == dst {
		return errors.Errorf(
			"source and destination are the same directory: %s", src)
	}

	return opts.Names.Validate()
}

// Build minifies every asset in opts.Src and writes the results to opts.Dst.
//
// All sources are read, checked, and minified before anything is written, so a
// missing or undecodable source leaves opts.Dst untouched. Writes happen in
// Kinds order and are not rolled back: if one fails, the ones before it stay.
func Build(opts Opts) (res Result, err error) {
	err = opts.init()
	if err != nil {
		return
	}

	assets := make([]Asset, len(Kinds))
	outs := make([][]byte, len(Kinds))
	errs := make([]error, len(Kinds))

	var g errgroup.Group
	for i, k := range Kinds {
		i, k := i, k
		g.Go(func() error {
			assets[i], outs[i], errs[i] = opts.load(k)
			return errs[i]
		})
	}

	if g.Wait() != nil {
		// Report in Kinds order, not whichever finished first
		err = firstErr(errs)
		return
	}

	err = os.MkdirAll(opts.Dst, 0750)
	if err != nil {
		err = &DestinationWriteError{Path: opts.Dst, Err: err}
		return
	}

	for i, a := range assets {
		a.Unchanged, err = save(a.Dst, outs[i])
		if err != nil {
			return
		}

		res.Assets = append(res.Assets, a)

		if a.Unchanged {
			opts.Logf("%s: %s is up to date", a.Kind, a.Dst)
		} else {
			opts.Logf("%s: %s -> %s (%d -> %d bytes)",
				a.Kind, a.Src, a.Dst, a.SrcSize, a.DstSize)
		}
	}

	return
}

func (opts *Opts) load(k Kind) (a Asset, out []byte, err error) {
	name := opts.Names.Get(k)
	a = Asset{
		Kind: k,
		Src:  filepath.Join(opts.Src, name),
		Dst:  filepath.Join(opts.Dst, name),
	}

	b, err := ioutil.ReadFile(a.Src)
	if err != nil {
		err = &MissingFileError{Kind: k, Path: a.Src, Err: err}
		return
	}

	if !utf8.Valid(b) {
		err = &DecodeError{Kind: k, Path: a.Src, Offset: invalidOffset(b)}
		return
	}

	if mmErr := checkMediaType(k, name); mmErr != nil {
		opts.Logf("warning: %v", mmErr)
	}

	out, err = Minifier.Bytes(k.MediaType(), b)
	if err != nil {
		err = errors.Wrapf(err, "failed to minify %s %q", k, a.Src)
		return
	}

	a.SrcSize = len(b)
	a.DstSize = len(out)

	return
}

// save writes b to dst, unless dst already holds exactly b
func save(dst string, b []byte) (unchanged bool, err error) {
	unchanged, err = sameContent(dst, b)
	if err != nil {
		err = &DestinationWriteError{Path: dst, Err: err}
		return
	}

	if unchanged {
		return
	}

	f, err := cfs.Create(dst)
	if err != nil {
		err = &DestinationWriteError{
			Path: dst,
			Err:  errors.Wrap(err, "create failed"),
		}
		return
	}

	defer f.Close()

	_, err = f.Write(b)
	if err == nil {
		err = f.Close()
	}

	if err != nil {
		err = &DestinationWriteError{Path: dst, Err: err}
	}

	return
}

func firstErr(errs []error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	return nil
}

func invalidOffset(b []byte) int {
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}

		i += size
	}

	return -1
}
