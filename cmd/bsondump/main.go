// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/blinklabs-io/gobson/bson"
	_cbor "github.com/fxamacker/cbor/v2"
)

type bsondumpFlags struct {
	flagset      *flag.FlagSet
	diag         bool
	skipValidate bool
	maxDepth     int
}

func newBsondumpFlags() *bsondumpFlags {
	f := &bsondumpFlags{
		flagset: flag.NewFlagSet(os.Args[0], flag.ExitOnError),
	}
	f.flagset.BoolVar(
		&f.diag,
		"diag",
		false,
		"print documents in CBOR diagnostic notation",
	)
	f.flagset.BoolVar(
		&f.skipValidate,
		"skip-utf8-validation",
		false,
		"replace invalid UTF-8 with U+FFFD instead of failing",
	)
	f.flagset.IntVar(
		&f.maxDepth,
		"max-depth",
		bson.MaxNestedLevels,
		"maximum allowed document nesting depth",
	)
	return f
}

func main() {
	f := newBsondumpFlags()
	if err := f.flagset.Parse(os.Args[1:]); err != nil {
		fmt.Printf("failed to parse command args: %s\n", err)
		os.Exit(1)
	}
	if f.flagset.NArg() != 1 {
		fmt.Printf("Usage: %s [options] <file.bson>\n", os.Args[0])
		os.Exit(1)
	}
	data, err := os.ReadFile(f.flagset.Arg(0))
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	opts := []bson.DecodeOptionFunc{
		bson.WithMaxDepth(f.maxDepth),
	}
	if f.skipValidate {
		opts = append(opts, bson.WithUTF8Validation(false))
	}
	dec := bson.NewStreamDecoder(data, opts...)
	for !dec.EOF() {
		offset := dec.Position()
		doc, err := dec.Next()
		if err != nil {
			fmt.Printf("ERROR: document at offset %d: %s\n", offset, err)
			os.Exit(1)
		}
		if f.diag {
			cborData, err := bson.ToCBOR(doc)
			if err != nil {
				fmt.Printf("ERROR: %s\n", err)
				os.Exit(1)
			}
			diag, err := _cbor.Diagnose(cborData)
			if err != nil {
				fmt.Printf("ERROR: %s\n", err)
				os.Exit(1)
			}
			fmt.Println(diag)
		} else {
			fmt.Print(bson.DumpDocumentStructure(doc, ""))
		}
	}
}
