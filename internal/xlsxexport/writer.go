package xlsxexport

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/xuri/excelize/v2"

	"hungerguard/internal/port"
)

// Sheet names in the exported workbook, in order.
const (
	SheetInventory = "Inventory"
	SheetDemand    = "Demand"
	SheetLogistics = "Logistics"
	SheetStorage   = "Storage"
	SheetFarmers   = "Farmers"
)

// BuildWorkbook renders all reference datasets into a multi-sheet Excel
// workbook. The caller owns the returned file and must Close it.
func BuildWorkbook(ctx context.Context, datasets port.DatasetProvider) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", SheetInventory); err != nil {
		return nil, fmt.Errorf("renaming inventory sheet: %w", err)
	}
	for _, name := range []string{SheetDemand, SheetLogistics, SheetStorage, SheetFarmers} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("creating sheet %s: %w", name, err)
		}
	}

	if err := writeInventory(ctx, f, datasets); err != nil {
		return nil, err
	}
	if err := writeDemand(ctx, f, datasets); err != nil {
		return nil, err
	}
	if err := writeLogistics(ctx, f, datasets); err != nil {
		return nil, err
	}
	if err := writeStorage(ctx, f, datasets); err != nil {
		return nil, err
	}
	if err := writeFarmers(ctx, f, datasets); err != nil {
		return nil, err
	}

	return f, nil
}

func writeInventory(ctx context.Context, f *excelize.File, datasets port.DatasetProvider) error {
	items, err := datasets.Inventory(ctx)
	if err != nil {
		return fmt.Errorf("loading inventory: %w", err)
	}
	rows := [][]interface{}{
		{"ID", "Location", "Item", "Quantity", "Unit", "Perishability", "Recorded Date", "Price Per Unit", "Farmer ID"},
	}
	for _, it := range items {
		rows = append(rows, []interface{}{
			it.ID, it.Location, it.Item, it.Quantity, string(it.Unit),
			it.Perishability, it.RecordedDate, it.PricePerUnit, it.FarmerID,
		})
	}
	return writeRows(f, SheetInventory, rows)
}

func writeDemand(ctx context.Context, f *excelize.File, datasets port.DatasetProvider) error {
	demands, err := datasets.DemandSignals(ctx)
	if err != nil {
		return fmt.Errorf("loading demand signals: %w", err)
	}
	rows := [][]interface{}{
		{"ID", "Location", "Needs", "Urgency", "Capacity (kg)", "Population Served", "Last Delivery"},
	}
	for _, d := range demands {
		rows = append(rows, []interface{}{
			d.ID, d.Location, strings.Join(d.Needs, ", "), d.Urgency,
			d.CapacityKg, d.PopulationServed, d.LastDelivery,
		})
	}
	return writeRows(f, SheetDemand, rows)
}

func writeLogistics(ctx context.Context, f *excelize.File, datasets port.DatasetProvider) error {
	vehicles, err := datasets.Logistics(ctx)
	if err != nil {
		return fmt.Errorf("loading logistics: %w", err)
	}
	rows := [][]interface{}{
		{"ID", "Vehicle Type", "Capacity (kg)", "Location", "Status", "Cost Per Km", "CO2 Per Km"},
	}
	for _, v := range vehicles {
		rows = append(rows, []interface{}{
			v.ID, v.VehicleType, v.CapacityKg, v.Location, string(v.Status), v.CostPerKm, v.CO2PerKm,
		})
	}
	return writeRows(f, SheetLogistics, rows)
}

func writeStorage(ctx context.Context, f *excelize.File, datasets port.DatasetProvider) error {
	facilities, err := datasets.StorageFacilities(ctx)
	if err != nil {
		return fmt.Errorf("loading storage facilities: %w", err)
	}
	rows := [][]interface{}{
		{"ID", "Location", "Capacity (kg)", "Available (kg)", "Temperature", "Cost Per Day Per Kg"},
	}
	for _, s := range facilities {
		rows = append(rows, []interface{}{
			s.ID, s.Location, s.CapacityKg, s.AvailableKg, s.Temperature, s.CostPerDayPerKg,
		})
	}
	return writeRows(f, SheetStorage, rows)
}

func writeFarmers(ctx context.Context, f *excelize.File, datasets port.DatasetProvider) error {
	farmers, err := datasets.Farmers(ctx)
	if err != nil {
		return fmt.Errorf("loading farmers: %w", err)
	}
	ids := make([]string, 0, len(farmers))
	for id := range farmers {
		ids = append(ids, id)
	}
	// Deterministic row order across exports.
	sort.Strings(ids)

	rows := [][]interface{}{
		{"Farmer ID", "Name", "Location", "Years Farming", "Economic Status", "Last Month Income"},
	}
	for _, id := range ids {
		fr := farmers[id]
		rows = append(rows, []interface{}{
			id, fr.Name, fr.Location, fr.YearsFarming, fr.EconomicStatus, fr.LastMonthIncome,
		})
	}
	return writeRows(f, SheetFarmers, rows)
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("computing cell for %s row %d: %w", sheet, i+1, err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("writing %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
