// Package listview is a generic scrolling list for Bubble Tea.
//
// Only the rows inside the viewport are rendered, so long company lists stay
// responsive. Navigation keys: up/down (or k/j), pgup/pgdown, home/end.
package listview
