package emissions

// Display and export constants.
const (
	// UnitSuffix is appended to formatted tonne values.
	UnitSuffix = "t CO₂"

	// NoDataExport is returned by the CSV exporters for an empty series.
	NoDataExport = "No data available for export"

	// CSVHeader is the column header row of an export.
	CSVHeader = "Period,Emissions (tons CO₂)"

	// DailyWindow is the number of trailing days shown on daily charts.
	DailyWindow = 30
)

// Trend classification constants.
const (
	// StableThresholdPercent is the absolute change below which a series is stable.
	StableThresholdPercent = 5.0

	percentMultiplier = 100
)

// Magnitude thresholds for abbreviated display.
const (
	thousandThreshold = 1_000
	millionThreshold  = 1_000_000
)

// EPA equivalency factors (2024 edition), kg CO₂e per unit of activity.
const (
	// EPAMilesDrivenFactor is kg CO₂e per mile for an average passenger vehicle.
	EPAMilesDrivenFactor = 0.192

	// EPASmartphoneChargeFactor is kg CO₂e per smartphone charge.
	EPASmartphoneChargeFactor = 0.00822

	// TonnesToKg converts metric tonnes to kilograms.
	TonnesToKg = 1000.0
)
