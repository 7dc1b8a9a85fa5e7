/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"sync"
	"testing"

	"github.com/suparena/polyserde/errors"
)

// Test types

type message interface {
	Kind() string
}

type ping struct {
	Seq int `json:"seq"`
}

func (*ping) Kind() string { return "ping" }

type pong struct {
	Seq int `json:"seq"`
}

func (*pong) Kind() string { return "pong" }

// jsonDecoder is a minimal Decoder over raw JSON for tests.
type jsonDecoder []byte

func (d jsonDecoder) Decode(v any) error {
	return json.Unmarshal(d, v)
}

// errDecoder always fails.
type errDecoder struct {
	err error
}

func (d errDecoder) Decode(v any) error {
	return d.err
}

func TestRegisterAndResolve(t *testing.T) {
	r := New[message]()

	if err := r.Register("ping", DecodeAs[message, ping]()); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	fn, ok := r.Resolve("ping")
	if !ok {
		t.Fatal("Resolve should find a registered tag")
	}

	v, err := fn(jsonDecoder(`{"seq": 7}`))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	p, ok := v.(*ping)
	if !ok {
		t.Fatalf("expected *ping, got %T", v)
	}
	if p.Seq != 7 {
		t.Errorf("expected Seq 7, got %d", p.Seq)
	}

	if _, ok := r.Resolve("pong"); ok {
		t.Error("Resolve should not find an unregistered tag")
	}
}

func TestRegisterValidation(t *testing.T) {
	r := New[message]()

	if err := r.Register("", DecodeAs[message, ping]()); err == nil {
		t.Error("Register should reject an empty tag")
	}
	if err := r.Register("ping", nil); err == nil {
		t.Error("Register should reject a nil decode func")
	}
	if r.Len() != 0 {
		t.Errorf("rejected registrations must not be stored, Len = %d", r.Len())
	}
}

func TestRegisterConflictFirstWins(t *testing.T) {
	r := New[message]()

	first := func(dec Decoder) (message, error) { return &ping{Seq: 1}, nil }
	second := func(dec Decoder) (message, error) { return &ping{Seq: 2}, nil }

	if err := r.Register("S", first); err != nil {
		t.Fatalf("first Register failed: %v", err)
	}

	err := r.Register("S", second)
	if err == nil {
		t.Fatal("second Register should fail")
	}
	if !errors.IsRegistrationConflict(err) {
		t.Errorf("conflict should match ErrRegistrationConflict, got %v", err)
	}

	// The conflict error carries the entry that stayed in place
	var ce *ConflictError[message]
	if !stderrors.As(err, &ce) {
		t.Fatalf("expected ConflictError, got %T", err)
	}
	if ce.Tag != "S" {
		t.Errorf("expected tag S, got %q", ce.Tag)
	}
	kept, _ := ce.Existing(nil)
	if kept.(*ping).Seq != 1 {
		t.Error("ConflictError.Existing should be the first registration")
	}

	// Resolve must still return the first registration
	fn, ok := r.Resolve("S")
	if !ok {
		t.Fatal("Resolve failed after conflicting Register")
	}
	v, _ := fn(nil)
	if v.(*ping).Seq != 1 {
		t.Error("a conflicting Register must not overwrite the previous entry")
	}
}

func TestMustRegisterPanicsOnConflict(t *testing.T) {
	r := New[message]()
	MustRegister(r, "ping", DecodeAs[message, ping]())

	defer func() {
		if recover() == nil {
			t.Error("MustRegister should panic on a duplicate tag")
		}
	}()
	MustRegister(r, "ping", DecodeAs[message, ping]())
}

func TestDecodeAsPropagatesFailure(t *testing.T) {
	fn := DecodeAs[message, ping]()

	cause := fmt.Errorf("truncated input")
	if _, err := fn(errDecoder{err: cause}); !stderrors.Is(err, cause) {
		t.Errorf("decode failure should propagate unchanged, got %v", err)
	}

	if _, err := fn(jsonDecoder(`{"seq": "not a number"}`)); err == nil {
		t.Error("type mismatch in payload should surface an error")
	}
}

func TestDecodeAsRejectsNonImplementingType(t *testing.T) {
	// int does not implement message; the factory must fail at decode time,
	// never hand back a partially built value.
	fn := DecodeAs[message, int]()
	if _, err := fn(jsonDecoder(`3`)); err == nil {
		t.Error("DecodeAs should report that *int does not implement message")
	}
}

func TestTagsSorted(t *testing.T) {
	r := New[message]()
	for _, tag := range []string{"zebra", "alpha", "mid"} {
		MustRegister(r, tag, DecodeAs[message, ping]())
	}

	tags := r.Tags()
	want := []string{"alpha", "mid", "zebra"}
	if len(tags) != len(want) {
		t.Fatalf("expected %d tags, got %d", len(want), len(tags))
	}
	for i := range want {
		if tags[i] != want[i] {
			t.Errorf("Tags()[%d] = %q, want %q", i, tags[i], want[i])
		}
	}
}

func TestConcurrentResolveAndRegister(t *testing.T) {
	r := New[message]()

	fixed := []string{"a", "b", "c", "d"}
	for _, tag := range fixed {
		MustRegister(r, tag, DecodeAs[message, ping]())
	}

	const readers = 8
	const iterations = 2000

	var wg sync.WaitGroup
	errCh := make(chan error, readers+1)

	for i := 0; i < readers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for n := 0; n < iterations; n++ {
				tag := fixed[n%len(fixed)]
				fn, ok := r.Resolve(tag)
				if !ok || fn == nil {
					errCh <- fmt.Errorf("Resolve(%q) lost a registered entry", tag)
					return
				}
			}
		}()
	}

	// One writer registering disjoint tags alongside the readers
	wg.Add(1)
	go func() {
		defer wg.Done()
		for n := 0; n < iterations; n++ {
			tag := fmt.Sprintf("extra-%d", n)
			if err := r.Register(tag, DecodeAs[message, pong]()); err != nil {
				errCh <- fmt.Errorf("Register(%q) failed: %v", tag, err)
				return
			}
		}
	}()

	wg.Wait()
	close(errCh)
	for err := range errCh {
		t.Error(err)
	}

	if got := r.Len(); got != len(fixed)+iterations {
		t.Errorf("expected %d entries, got %d", len(fixed)+iterations, got)
	}
}
