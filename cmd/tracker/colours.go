package main

import "github.com/jrsteele09/employee-tracker/employee"

const (
	// Standard colors
	Black   = "\033[30m"
	Red     = "\033[31m"
	Green   = "\033[32m"
	Yellow  = "\033[33m"
	Blue    = "\033[34m"
	Magenta = "\033[35m"
	Cyan    = "\033[36m"
	White   = "\033[37m"
	Gray    = "\033[90m" // Bright black, often appears as gray

	ResetColor = "\033[0m" // Reset to default color
)

var locationColours = map[employee.Location]string{
	employee.LocationOffice:     Green,
	employee.LocationHomeOffice: Blue,
	employee.LocationOnTheRoad:  Yellow,
	employee.LocationVacation:   Magenta,
	employee.LocationSick:       Red,
}

var workloadColours = map[employee.WorkloadStatus]string{
	employee.WorkloadGreen:  Green,
	employee.WorkloadYellow: Yellow,
	employee.WorkloadRed:    Red,
}
