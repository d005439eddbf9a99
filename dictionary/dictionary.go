package dictionary

import (
	"sync"

	"golang.org/x/sync/singleflight"
)

// Dictionary lazily builds and caches one OSG per requested word length
// (spec §4.4). Safe for concurrent use: concurrent requests for the same
// unbuilt length collapse onto a single build via singleflight, and the
// cache itself is guarded by an RWMutex following the
// read-then-upgrade discipline the teacher's lock-on-miss cache helpers
// use elsewhere in the corpus.
type Dictionary struct {
	gen Generator

	mu    sync.RWMutex
	cache map[int]*OSG

	group singleflight.Group
}

// New constructs a Dictionary over gen. gen is typically an
// opctx.Context; Dictionary only needs the Generator subset of it.
func New(gen Generator) *Dictionary {
	return &Dictionary{gen: gen, cache: make(map[int]*OSG)}
}

// OSGUpTo returns the OSG enumerating every canonical sequence of length
// 0..wordLength, building and caching it if this is the first request
// for that length (or any length, since a longer cached OSG's prefix
// would also answer a shorter request -- but spec §4.4 models one OSG
// per requested length, so no such reuse is attempted here).
func (d *Dictionary) OSGUpTo(wordLength int) *OSG {
	d.mu.RLock()
	if osg, ok := d.cache[wordLength]; ok {
		d.mu.RUnlock()
		return osg
	}
	d.mu.RUnlock()

	key := osgKey(wordLength)
	result, _, _ := d.group.Do(key, func() (interface{}, error) {
		// Re-check: another goroutine may have raced us into Do for a
		// different call but finished inserting into cache already via
		// a previous generation (can't happen with singleflight alone
		// for the *same* key, but the re-check costs nothing and
		// matches the read-lock/upgrade-to-write-lock pattern spec
		// §4.4 describes).
		d.mu.RLock()
		if osg, ok := d.cache[wordLength]; ok {
			d.mu.RUnlock()
			return osg, nil
		}
		d.mu.RUnlock()

		built := buildOSG(d.gen, wordLength)

		d.mu.Lock()
		if existing, ok := d.cache[wordLength]; ok {
			d.mu.Unlock()
			return existing, nil
		}
		d.cache[wordLength] = built
		d.mu.Unlock()
		return built, nil
	})
	return result.(*OSG)
}

func buildOSG(gen Generator, wordLength int) *OSG {
	if builder, ok := gen.(Builder); ok {
		return &OSG{wordLength: wordLength, sequences: builder.BuildOSG(wordLength)}
	}
	return &OSG{wordLength: wordLength, sequences: defaultEnumerate(gen, wordLength)}
}

func osgKey(wordLength int) string {
	// singleflight keys on string; a small fixed-radix encoding avoids
	// pulling in strconv.Itoa's allocation-happy formatting for the
	// hot path of repeated identical-length requests.
	if wordLength == 0 {
		return "0"
	}
	neg := wordLength < 0
	n := wordLength
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
