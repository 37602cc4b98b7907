package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gosuri/uilive"
	"github.com/webbmaffian/go-chainmap/chainmap"
	"github.com/webbmaffian/go-chainmap/internal/dumpfile"
)

func main() {
	capacity := flag.Int("capacity", chainmap.DefaultCapacity, "number of buckets")
	live := flag.Bool("live", false, "render the buckets live while running")
	out := flag.String("out", "", "write the final bucket dump to this file")
	flag.Parse()

	m, err := chainmap.New[string, int](*capacity)

	if err != nil {
		log.Fatal(err)
	}

	var table io.Writer = io.Discard

	if *live {
		writer := uilive.New()
		writer.Start()
		defer writer.Stop()
		table = writer
	}

	step := func(desc string) {
		fmt.Fprintf(table, "%s\n\n%s\n", desc, m)

		if *live {
			time.Sleep(500 * time.Millisecond)
		}
	}

	m.Put("apple", 10)
	step("put apple")
	m.Put("banana", 20)
	step("put banana")
	m.Put("grape", 30)
	step("put grape")

	for _, key := range []string{"apple", "banana", "orange"} {
		printGet(m, key)
	}

	m.Put("apple", 15)
	step("update apple")
	printGet(m, "apple")

	log.Println("removed banana:", m.Remove("banana"))
	step("remove banana")
	printGet(m, "banana")

	log.Printf("HashMap structure (%d items):\n%s", m.Len(), m)

	if *out != "" {
		if err = dumpfile.Write(*out, []byte(m.String())); err != nil {
			log.Println(err)
			os.Exit(1)
		}

		log.Println("dump written to", *out)
	}
}

func printGet(m *chainmap.Map[string, int], key string) {
	if val, ok := m.Get(key); ok {
		log.Printf("value for %q: %d", key, val)
	} else {
		log.Printf("value for %q: not found", key)
	}
}
