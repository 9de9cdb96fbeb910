package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/simonhull/mediameta"
)

// Useful test tool to confirm what we're able to actually read from the
// different boxes.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: box-dump <file.heic|file.mp4>")
		os.Exit(1)
	}

	file, err := mediameta.Open(os.Args[1])
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	fmt.Printf("%s (%s, %d bytes)\n\n", file.Path, file.Format, file.Size)

	for _, box := range file.Boxes {
		dumpBox(box, 0)
	}

	if len(file.Warnings) > 0 {
		fmt.Println("\nWarnings:")
		for _, w := range file.Warnings {
			fmt.Printf("  %s\n", w)
		}
	}
}

func dumpBox(b *mediameta.Box, depth int) {
	indent := strings.Repeat("  ", depth)

	line := fmt.Sprintf("%s%s (size: %d, offset: %d", indent, b.Type, b.Extent.Length, b.Extent.Start)
	if b.HasUUID {
		line += fmt.Sprintf(", uuid: %x", b.UUID)
	}
	line += ")"
	fmt.Println(line)

	switch d := b.Detail.(type) {
	case *mediameta.Ftyp:
		fmt.Printf("%s  major: %s, compatible: %s\n", indent, d.MajorBrand, strings.Join(d.Compatible, " "))
	case *mediameta.Hdlr:
		fmt.Printf("%s  handler: %s\n", indent, d.HandlerType)
	case *mediameta.Pitm:
		fmt.Printf("%s  primary item: %d\n", indent, d.ItemID)
	case *mediameta.Infe:
		fmt.Printf("%s  item %d: %s %s\n", indent, d.ItemID, d.ItemType, d.ItemName)
	case *mediameta.ItemReference:
		fmt.Printf("%s  %s: %d -> %v\n", indent, d.ReferenceType, d.FromItemID, d.ToItemIDs)
	}

	for _, child := range b.Children {
		dumpBox(child, depth+1)
	}
}
