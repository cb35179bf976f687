// Package telemetry reads current and temperature logs recorded by the bench
// power supply.
//
// A log is a semicolon separated text file with one header row. Column 1 is
// the sample time in seconds, column 2 the current and the optional column 3
// the temperature; column 0 is a row label and is ignored. Numbers may use a
// decimal comma. Fields that cannot be parsed are read as 0 and counted in
// [Log.BadFields].
//
// Temperature samples exist only on rows that carry all four fields, so the
// temperature [Series] has its own time axis.
package telemetry
