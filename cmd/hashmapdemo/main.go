// Command hashmapdemo fills a hashmap.Map and prints its contents,
// length and capacity.
//
// Without --seed it runs the built-in colour table. With --seed it loads a
// JSON object (comments allowed) of string values; --watch keeps running
// and reloads the file whenever it changes.
package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/getlantern/golog"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/llxisdsh/hashmap"
)

var log = golog.LoggerFor("hashmapdemo")

type options struct {
	seed       string
	watch      bool
	capacity   int
	loadFactor float64
	linked     bool
}

func main() {
	if err := newCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "hashmapdemo",
		Short: "Fill a chained hash map and print its entries, length and capacity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(afero.NewOsFs(), opts, cmd.OutOrStdout())
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&opts.seed, "seed", "", "JSONC file with the entries to load")
	flags.BoolVar(&opts.watch, "watch", false, "reload --seed whenever it changes")
	flags.IntVar(&opts.capacity, "capacity", 16, "initial number of buckets")
	flags.Float64Var(&opts.loadFactor, "loadfactor", 0.75, "load factor in (0, 1]")
	flags.BoolVar(&opts.linked, "linked", false, "chain collisions in linked lists")
	return cmd
}

func run(fs afero.Fs, opts options, w io.Writer) error {
	if opts.seed == "" {
		return errors.Wrap(runBuiltin(newMap(opts), w), "builtin")
	}
	m, err := loadSeed(fs, opts.seed, opts)
	if err != nil {
		return err
	}
	report(m, w)
	if !opts.watch {
		return nil
	}

	sw, err := newSeedWatcher(fs, opts, m, w)
	if err != nil {
		return err
	}
	defer sw.Close()

	stop := make(chan struct{})
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(signals)
	go func() {
		<-signals
		close(stop)
	}()
	return sw.run(stop)
}

func newMap(opts options) *hashmap.Map[string] {
	mapOpts := []func(*hashmap.MapConfig){
		hashmap.WithCapacity(opts.capacity),
		hashmap.WithLoadFactor(opts.loadFactor),
		hashmap.WithResizeHook(func(oldCapacity, newCapacity int) {
			log.Debugf("grew from %d to %d buckets", oldCapacity, newCapacity)
		}),
	}
	if opts.linked {
		mapOpts = append(mapOpts, hashmap.WithLinkedChains())
	}
	return hashmap.New[string](mapOpts...)
}

var colours = []hashmap.Entry[string]{
	{Key: "apple", Value: "red"},
	{Key: "banana", Value: "yellow"},
	{Key: "carrot", Value: "orange"},
	{Key: "dog", Value: "brown"},
	{Key: "elephant", Value: "gray"},
	{Key: "frog", Value: "green"},
	{Key: "grape", Value: "purple"},
	{Key: "hat", Value: "black"},
	{Key: "ice cream", Value: "white"},
	{Key: "jacket", Value: "blue"},
	{Key: "kite", Value: "pink"},
	{Key: "lion", Value: "golden"},
}

func runBuiltin(m *hashmap.Map[string], w io.Writer) error {
	for _, e := range colours {
		if err := m.Set(e.Key, e.Value); err != nil {
			return err
		}
	}
	if err := m.Set("lion", "red"); err != nil {
		return err
	}
	report(m, w)

	if err := m.Set("moon", "silver"); err != nil {
		return err
	}
	fmt.Fprintf(w, "capacity after moon: %d\n", m.Capacity())
	m.Remove("moon")
	fmt.Fprintf(w, "length after removing moon: %d\n", m.Len())
	fmt.Fprintf(w, "has empty key: %t\n", m.Has(""))
	return nil
}

func report(m *hashmap.Map[string], w io.Writer) {
	for _, e := range m.Entries() {
		fmt.Fprintf(w, "%s: %s\n", e.Key, e.Value)
	}
	fmt.Fprintf(w, "length: %d\n", m.Len())
	fmt.Fprintf(w, "capacity: %d\n", m.Capacity())
}

// loadSeed decodes the JSONC object in path into a new map.
func loadSeed(fs afero.Fs, path string, opts options) (*hashmap.Map[string], error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.Wrap(err, "read seed")
	}
	m := newMap(opts)
	if err := m.UnmarshalJSONC(data); err != nil {
		return nil, errors.Wrap(err, "load seed")
	}
	log.Debugf("loaded %d entries from %s", m.Len(), path)
	return m, nil
}

// seedWatcher reloads the seed file whenever it is written or replaced.
// A reload that fails keeps the previous map.
type seedWatcher struct {
	fs      afero.Fs
	path    string
	opts    options
	w       io.Writer
	current *hashmap.Map[string]
	watcher *fsnotify.Watcher

	// onReload, if set, is called after every reload attempt with the map
	// in effect and the reload error.
	onReload func(m *hashmap.Map[string], err error)
}

func newSeedWatcher(fs afero.Fs, opts options, m *hashmap.Map[string], w io.Writer) (*seedWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "create watcher")
	}
	path := filepath.Clean(opts.seed)
	// editors and atomic writers replace the file, which drops a watch on
	// the file itself
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, errors.Wrap(err, "watch seed")
	}
	return &seedWatcher{
		fs:      fs,
		path:    path,
		opts:    opts,
		w:       w,
		current: m,
		watcher: watcher,
	}, nil
}

func (sw *seedWatcher) Close() error {
	return sw.watcher.Close()
}

func (sw *seedWatcher) run(stop <-chan struct{}) error {
	for {
		select {
		case ev, ok := <-sw.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != sw.path || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			sw.reload()
		case err, ok := <-sw.watcher.Errors:
			if !ok {
				return nil
			}
			log.Errorf("watcher: %v", err)
		case <-stop:
			return nil
		}
	}
}

func (sw *seedWatcher) reload() {
	m, err := loadSeed(sw.fs, sw.path, sw.opts)
	if err != nil {
		log.Errorf("reload %s: %v", sw.path, err)
	} else {
		sw.current = m
		report(m, sw.w)
	}
	if sw.onReload != nil {
		sw.onReload(sw.current, err)
	}
}
