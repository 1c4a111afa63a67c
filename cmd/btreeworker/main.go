// btreeworker is the driver harness described in the design notes: an
// external process, not part of the core btree package, that exercises a
// single shared tree concurrently from scripted operation files.
//
// Each file passed on the command line holds one operation per line in
// the form "op key", where op=1 is a search and op=2 is an insert. One
// goroutine is spawned per file; all goroutines share the same tree.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"sync"

	"btreeindex/btree"

	"github.com/fatih/color"
)

func main() {
	order := flag.Int("order", 32, "tree order (t >= 2)")
	useColor := flag.Bool("color", false, "highlight the printed tree")
	flag.Parse()

	files := flag.Args()
	if len(files) == 0 {
		log.Fatal("usage: btreeworker [-order N] [-color] file [file...]")
	}

	tree := btree.Create(*order, btree.WithLookupCache(1<<16))
	defer tree.Destroy()

	var wg sync.WaitGroup
	wg.Add(len(files))
	for _, path := range files {
		path := path
		go func() {
			defer wg.Done()
			if err := runWorker(tree, path); err != nil {
				log.Printf("worker %s: %v", path, err)
			}
		}()
	}
	wg.Wait()

	if *useColor {
		fmt.Println(colorizePrint(tree.Print()))
	} else {
		fmt.Println(tree.Print())
	}
}

const (
	opSearch = 1
	opInsert = 2
)

// runWorker reads one "op key" line at a time from path and applies it
// to tree. Malformed lines are logged and skipped rather than aborting
// the whole worker, since a single bad script line should not silently
// stop every other line from being exercised.
func runWorker(tree *btree.Tree, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			log.Printf("%s:%d: malformed line %q, want \"op key\"", path, lineNo, line)
			continue
		}
		op, err := strconv.Atoi(fields[0])
		if err != nil {
			log.Printf("%s:%d: bad op %q: %v", path, lineNo, fields[0], err)
			continue
		}
		key, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			log.Printf("%s:%d: bad key %q: %v", path, lineNo, fields[1], err)
			continue
		}

		switch op {
		case opSearch:
			tree.Search(key)
		case opInsert:
			tree.Insert(key, key)
		default:
			log.Printf("%s:%d: unknown op %d", path, lineNo, op)
		}
	}
	return scanner.Err()
}

var (
	parenColor = color.New(color.FgYellow).SprintFunc()
	keyColor   = color.New(color.FgCyan).SprintFunc()
)

// colorizePrint highlights parentheses and keys in the S-expression the
// tree prints; it does not reparse or alter the structure, only its
// terminal rendering.
func colorizePrint(s string) string {
	var sb strings.Builder
	var tok strings.Builder
	flush := func() {
		if tok.Len() > 0 {
			sb.WriteString(keyColor(tok.String()))
			tok.Reset()
		}
	}
	for _, r := range s {
		switch r {
		case '(', ')':
			flush()
			sb.WriteString(parenColor(string(r)))
		case ' ':
			flush()
			sb.WriteByte(' ')
		default:
			tok.WriteRune(r)
		}
	}
	flush()
	return sb.String()
}
