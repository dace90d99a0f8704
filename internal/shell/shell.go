// Package shell implements the interactive menu that drives the keg
// tracker. It is a pure adapter: it collects field values from the
// operator, hands well-typed values to the store, and formats the
// results. Unparsable numeric input is substituted with a zero value
// here, before the store ever sees it.
package shell

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/tapworks/kegtrack/internal/tracker"
	"github.com/tapworks/kegtrack/pkg/types"
)

// Menu choices.
const (
	choiceAdd    = "1"
	choiceUpdate = "2"
	choiceList   = "3"
	choiceExit   = "4"
)

// Shell runs the interactive menu loop against a Store.
type Shell struct {
	in    *bufio.Scanner
	out   io.Writer
	store *tracker.Store
	log   logrus.FieldLogger
}

// New returns a Shell reading operator input from in and writing the menu
// and results to out.
func New(in io.Reader, out io.Writer, store *tracker.Store, log logrus.FieldLogger) *Shell {
	return &Shell{
		in:    bufio.NewScanner(in),
		out:   out,
		store: store,
		log:   log,
	}
}

// Run shows the menu until the operator picks Exit. End of input on the
// reader ends the loop as well, so piped input cannot spin forever.
func (s *Shell) Run() {
	for {
		fmt.Fprintln(s.out, "\nKeg Tracker Menu:")
		fmt.Fprintln(s.out, "1. Add new keg")
		fmt.Fprintln(s.out, "2. Update keg volume")
		fmt.Fprintln(s.out, "3. List all kegs")
		fmt.Fprintln(s.out, "4. Exit")
		choice, ok := s.prompt("Enter your choice: ")
		if !ok {
			return
		}

		switch choice {
		case choiceAdd:
			if !s.addKeg() {
				return
			}
		case choiceUpdate:
			if !s.updateKeg() {
				return
			}
		case choiceList:
			s.listKegs()
		case choiceExit:
			fmt.Fprintln(s.out, "Exiting...")
			return
		default:
			fmt.Fprintln(s.out, "Invalid choice. Please try again.")
		}
	}
}

// addKeg collects the fields for a new keg and creates it. Returns false
// if input ended mid-dialog.
func (s *Shell) addKeg() bool {
	beerType, ok := s.prompt("Enter beer type: ")
	if !ok {
		return false
	}
	size, ok := s.promptFloat("Enter keg size (gallons): ")
	if !ok {
		return false
	}
	location, ok := s.prompt("Enter location: ")
	if !ok {
		return false
	}

	id := s.store.Add(beerType, size, location)
	s.log.WithFields(logrus.Fields{"id": id, "beer_type": beerType, "size": size}).Debug("keg added")
	fmt.Fprintln(s.out, "Keg added successfully!")
	return true
}

// updateKeg collects an ID and a new volume and applies the update.
// Returns false if input ended mid-dialog.
func (s *Shell) updateKeg() bool {
	id, ok := s.promptID("Enter keg ID: ")
	if !ok {
		return false
	}
	volume, ok := s.promptFloat("Enter new volume (gallons): ")
	if !ok {
		return false
	}

	if err := s.store.SetVolume(id, volume); err != nil {
		s.log.WithFields(logrus.Fields{"id": id, "volume": volume}).WithError(err).Debug("keg update rejected")
		fmt.Fprintf(s.out, "Error: %s\n", err)
		return true
	}
	s.log.WithFields(logrus.Fields{"id": id, "volume": volume}).Debug("keg updated")
	fmt.Fprintln(s.out, "Keg updated successfully!")
	return true
}

// listKegs renders the inventory as a tab-separated table, sorted by ID
// for the operator's benefit.
func (s *Shell) listKegs() {
	kegs := s.store.List()
	if len(kegs) == 0 {
		fmt.Fprintln(s.out, "No kegs in the system.")
		return
	}
	sort.Slice(kegs, func(i, j int) bool { return kegs[i].ID < kegs[j].ID })

	fmt.Fprintln(s.out, "\nCurrent Kegs:")
	fmt.Fprintln(s.out, "ID\tBeer Type\tSize\tCurrent\tLocation")
	fmt.Fprintln(s.out, "----------------------------------------")
	for _, keg := range kegs {
		s.printKeg(keg)
	}
}

func (s *Shell) printKeg(keg types.Keg) {
	fmt.Fprintf(s.out, "%d\t%s\t%.1f\t%.1f\t%s\n",
		keg.ID, keg.BeerType, keg.Size, keg.CurrentVolume, keg.Location)
}

// prompt writes the label and reads one trimmed line.
// The second return value is false when input has ended.
func (s *Shell) prompt(label string) (string, bool) {
	fmt.Fprint(s.out, label)
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

// promptFloat reads a line and parses it as a float; unparsable input
// becomes 0.0.
func (s *Shell) promptFloat(label string) (float64, bool) {
	line, ok := s.prompt(label)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseFloat(line, 64)
	if err != nil {
		return 0, true
	}
	return v, true
}

// promptID reads a line and parses it as a keg ID; unparsable input
// becomes 0, which no keg ever carries.
func (s *Shell) promptID(label string) (uint32, bool) {
	line, ok := s.prompt(label)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseUint(line, 10, 32)
	if err != nil {
		return 0, true
	}
	return uint32(v), true
}
