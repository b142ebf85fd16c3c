// Package printer implements the Printer capability.
package printer

// Service formats rental orders for printing. No device output occurs.
type Service struct{}

// New returns a printer Service.
func New() Service {
	return Service{}
}

// PrintOrder returns "Printing order: " followed by order.
func (Service) PrintOrder(order string) string {
	return "Printing order: " + order
}
