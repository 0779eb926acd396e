package drivererr

import "strings"

// UnknownDriver is the driver name reported when no frame identifies a driver.
const UnknownDriver = "unknown"

const driverSuffix = "Driver"

// DriverName infers the name of the driver from an ordered list of fully
// qualified type names, as produced by Stack.TypeNames.
//
// Every name ending in "Driver" is a candidate; the last segment after the
// final '.' is taken as the driver name. The last candidate in the list wins,
// so with an innermost-first stack the outermost driver is reported.
// Returns UnknownDriver when nothing matches.
func DriverName(typeNames []string) string {
	name := UnknownDriver
	for _, tn := range typeNames {
		if strings.HasSuffix(tn, driverSuffix) {
			name = tn[strings.LastIndexByte(tn, '.')+1:]
		}
	}
	return name
}

func driverVersion(s Stack) string {
	var names []string
	if s != nil {
		names = s.TypeNames()
	}
	return "driver.version: " + DriverName(names)
}
