package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/jrsteele09/employee-tracker/dashboard"
	"github.com/jrsteele09/employee-tracker/employee"
)

func (c *cli) dashboard(ctx context.Context) error {
	if err := c.requireAuth(ctx); err != nil {
		return err
	}

	loader := dashboard.NewLoader(c.gateway)
	dash, err := loader.Load(ctx)
	if err != nil {
		return fmt.Errorf("dashboard load failed: %w", err)
	}

	fmt.Printf("Welcome back, %s!\n\n", dash.Me.FullName())

	printGroup("At the office", employee.LocationOffice, dash.Groups.Office)
	printGroup("Home office", employee.LocationHomeOffice, dash.Groups.HomeOffice)
	printGroup("On the road", employee.LocationOnTheRoad, dash.Groups.OnTheRoad)
	printGroup("Vacation", employee.LocationVacation, dash.Groups.Vacation)
	printGroup("Sick", employee.LocationSick, dash.Groups.Sick)
	if len(dash.Groups.Unknown) > 0 {
		printGroup("Elsewhere", "", dash.Groups.Unknown)
	}

	if dash.MyDetails != nil && dash.MyDetails.WorkloadStatus != "" {
		colour := workloadColours[dash.MyDetails.WorkloadStatus]
		fmt.Printf("\nYour workload: %s%s%s\n", colour, dash.MyDetails.WorkloadStatus, ResetColor)
	}
	return nil
}

func printGroup(title string, location employee.Location, members []employee.Employee) {
	colour, ok := locationColours[location]
	if !ok {
		colour = Gray
	}
	fmt.Printf("%s●%s %s (%d)\n", colour, ResetColor, title, len(members))
	for _, member := range members {
		name := strings.TrimSpace(member.FirstName + " " + member.LastName)
		if name == "" {
			name = member.Email
		}
		if member.Role != "" {
			fmt.Printf("    %s %s· %s%s\n", name, Gray, member.Role, ResetColor)
		} else {
			fmt.Printf("    %s\n", name)
		}
	}
}

func (c *cli) profile(ctx context.Context, args []string) error {
	if err := c.requireAuth(ctx); err != nil {
		return err
	}

	var details *employee.Details
	var err error
	if len(args) > 0 {
		details, err = c.gateway.UserDetails(ctx, args[0])
	} else {
		details, err = c.gateway.CurrentUserDetails(ctx)
	}
	if err != nil {
		return fmt.Errorf("profile load failed: %w", err)
	}

	printField("Role", details.Role)
	printField("Location", details.Location)
	printField("Today", string(details.TodayLocation))
	printField("Office days", strings.Join(details.OfficeDays, ", "))
	if details.WorkloadStatus != "" {
		colour := workloadColours[details.WorkloadStatus]
		fmt.Printf("%-16s %s%s%s\n", "Workload", colour, details.WorkloadStatus, ResetColor)
	}
	printField("Bio", details.ProfileBio)
	printField("Skills", details.Skills)
	printField("Interests", details.Interests)
	printField("Favorite recipes", details.FavoriteRecipes)
	printField("Recommendations", details.Recommendations)
	if details.DaysWithCompany > 0 {
		fmt.Printf("%-16s %d days\n", "With company", details.DaysWithCompany)
	}
	return nil
}

func printField(label, value string) {
	if value == "" {
		return
	}
	fmt.Printf("%-16s %s\n", label, value)
}
