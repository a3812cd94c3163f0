// Command mazeserver exposes maze generation over a minimal HTTP contract:
// GET /?width=W&height=H&seed=BASE64URL[&solution] returns an SVG.
//
// This is an external collaborator per the core pipeline's design — the
// generator itself takes no network dependency — so it is built on
// net/http from the standard library rather than a third-party router.
package main

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/binary"
	"flag"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/dshills/mazeforge/pkg/maze"
)

const (
	defaultWidth  = 60
	defaultHeight = 40
)

func parseSeed(raw string) (uint64, error) {
	decoded, err := base64.URLEncoding.WithPadding(base64.NoPadding).DecodeString(raw)
	if err != nil {
		decoded, err = base64.URLEncoding.DecodeString(raw)
		if err != nil {
			return 0, fmt.Errorf("could not parse seed: %w", err)
		}
	}
	sum := sha256.Sum256(decoded)
	return binary.LittleEndian.Uint64(sum[:8]), nil
}

func mazeHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	width := defaultWidth
	if v := q.Get("width"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			http.Error(w, "could not parse width", http.StatusBadRequest)
			return
		}
		width = parsed
	}

	height := defaultHeight
	if v := q.Get("height"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			http.Error(w, "could not parse height", http.StatusBadRequest)
			return
		}
		height = parsed
	}

	var seed uint64
	if v := q.Get("seed"); v != "" {
		parsed, err := parseSeed(v)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		seed = parsed
	}

	_, showSolution := q["solution"]

	result, err := maze.BuildSquareWithSolutionVisibility(seed, width, height, 24, showSolution)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml; charset=UTF-8")
	w.Write(result.SVG)
}

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	flag.Parse()

	http.HandleFunc("/", mazeHandler)
	log.Printf("listening on %s", *addr)
	log.Fatal(http.ListenAndServe(*addr, nil))
}
