package main

import (
	"log"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/rawbytedev/memregion"
	"github.com/rawbytedev/memregion/pkg/blobwire"
)

// exercises the hot paths under the heap profiler
func main() {
	f, err := os.Create("mem.prof")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	runtime.MemProfileRate = 1

	src, err := memregion.Alloc(4096)
	if err != nil {
		log.Fatal(err)
	}
	sp := src.Span()
	for i := 0; i < src.Size(); i++ {
		sp.Set(i, byte(i%13))
	}

	enc, err := blobwire.NewEncoder(blobwire.Options{Compress: true})
	if err != nil {
		log.Fatal(err)
	}
	dec, err := blobwire.NewDecoder()
	if err != nil {
		log.Fatal(err)
	}

	for i := 0; i < 10000; i++ {
		frame, err := enc.Encode(src.View())
		if err != nil {
			log.Fatal(err)
		}
		out, err := dec.Decode(frame)
		if err != nil {
			log.Fatal(err)
		}
		out.Reset()
	}
	pprof.WriteHeapProfile(f)
}
