// Package pagination provides the sort and paging flags shared by list commands.
//
//   - PaginationParams: flag values and validation for offset or page mode
//   - PaginationMeta: page metadata written with JSON output
//   - CompanySorter: field-validated sorting of company listings
package pagination
