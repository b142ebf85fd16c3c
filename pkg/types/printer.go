package types

// Printer produces the printed form of a rental order.
type Printer interface {
	// PrintOrder formats order for printing and returns it.
	PrintOrder(order string) string
}
