// Package tui implements the interactive carbonhub dashboard with Bubble Tea.
//
// The dashboard opens on the company list (filterable and sortable) and
// drills into a company detail view with annual, monthly and daily tabs. Each
// tab shows a bar chart, a sparkline, summary statistics and the trend.
// Data is fetched through the DataSource interface so the model can be driven
// in tests without a network.
package tui
