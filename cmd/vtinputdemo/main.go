// Command vtinputdemo feeds a short escape sequence script through vtinput
// into a refscreen.Screen and prints the resulting snapshot.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/cdavis5e/vtinput/refscreen"
	"github.com/cdavis5e/vtinput/sixelcodec"
	"github.com/cdavis5e/vtinput/vtinput"
)

func main() {
	scr := refscreen.NewScreen(24, 80)
	term := vtinput.New(scr, vtinput.WithSixelDecoder(sixelcodec.Decoder{}))

	term.WriteString("\x1b]0;vtinputdemo\x07")
	term.WriteString("\x1b[31mHello \x1b[32mWorld\x1b[0m!\r\n")
	term.WriteString("\x1b[1;4mBold and Underlined\x1b[0m\r\n")
	term.WriteString("Normal text\r\n")

	snap := scr.Snapshot(refscreen.SnapshotDetailStyled)

	fmt.Printf("cursor: row=%d col=%d\n", snap.Cursor.Row, snap.Cursor.Col)
	for i, line := range snap.Lines {
		if line.Text == "" {
			continue
		}
		fmt.Printf("%2d: %s\n", i, line.Text)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		fmt.Fprintln(os.Stderr, "encode snapshot:", err)
		os.Exit(1)
	}
}
