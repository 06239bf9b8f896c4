package console

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"food-truck-finder/internal/domain"
	"food-truck-finder/internal/services"
)

// UI is the terminal realization of the session's IntentSource and
// Renderer ports: it prints ranked pages and turns input lines into
// intents. All session logic stays out of here.
type UI struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewUI(in io.Reader, out io.Writer) *UI {
	return &UI{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// Next prompts for and reads one intent. End of input counts as quitting.
func (u *UI) Next(ctx context.Context) (domain.Intent, error) {
	fmt.Fprint(u.out, "enter the number you will visit, or just press return to list more,\nor \"q\" to quit: ")

	if !u.in.Scan() {
		if err := u.in.Err(); err != nil {
			return domain.Intent{}, fmt.Errorf("read input: %w", err)
		}
		return domain.Intent{Kind: domain.IntentQuit}, nil
	}
	return services.ParseIntent(u.in.Text()), nil
}

func (u *UI) RenderPage(page domain.Page) {
	fmt.Fprintln(u.out)
	for i, e := range page.Entries {
		fmt.Fprintf(u.out, "%d) %s  %s  %.1f mi.\n", page.GlobalRank(i), e.Truck.Name, e.Truck.Address, e.DistanceMiles)
		if e.Truck.FoodItems != "" {
			fmt.Fprintln(u.out, e.Truck.FoodItems)
		}
		fmt.Fprintln(u.out)
	}
}

func (u *UI) RenderInvalid(raw string) {
	fmt.Fprintln(u.out, "invalid input, enter a listed number or just press enter")
}

func (u *UI) RenderSelected(truck domain.Truck, visits int) {
	fmt.Fprintf(u.out, "enjoy %s at %s (visit #%d)\n", truck.Name, truck.Address, visits)
}

func (u *UI) RenderQuit(reason domain.QuitReason) {
	if reason == domain.QuitExhausted {
		fmt.Fprintln(u.out, "no more trucks to list")
		return
	}
	fmt.Fprintln(u.out, "goodbye")
}
