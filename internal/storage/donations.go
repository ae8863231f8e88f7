package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Veraticus/ewaste-impact/internal/common"
	"github.com/Veraticus/ewaste-impact/internal/model"
	"github.com/Veraticus/ewaste-impact/internal/service"
	"github.com/oklog/ulid/v2"
)

// deviceColumns lists the devices table columns in scan order. The material
// snapshot columns follow model.Materials.
var deviceColumns = func() []string {
	cols := []string{
		"id", "donor_id", "date_donated", "device_type", "model", "manufacturer",
		"serial_number", "condition", "weight", "verified",
	}
	for _, m := range model.Materials {
		cols = append(cols, string(m))
	}
	return append(cols, "co2_emissions")
}()

// SaveDonations stores devices and their impact snapshot for donorID in one
// transaction. Devices without an ID are given a ULID and DonorID is set to
// donorID; both are written back to the slice only once the transaction
// commits.
func (s *SQLiteStorage) SaveDonations(ctx context.Context, donorID string, donations []model.Donation) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(donorID, "donorID"); err != nil {
		return err
	}
	if err := validateDonations(donations); err != nil {
		return err
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(deviceColumns)), ", ")
	query := fmt.Sprintf("INSERT INTO devices (%s) VALUES (%s)", strings.Join(deviceColumns, ", "), placeholders)

	rows := make([]model.Donation, len(donations))
	copy(rows, donations)

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, query)
		if err != nil {
			return fmt.Errorf("failed to prepare statement: %w", err)
		}
		defer func() { _ = stmt.Close() }()

		for i := range rows {
			d := &rows[i]
			if d.Device.ID == "" {
				d.Device.ID = ulid.Make().String()
			}
			d.Device.DonorID = donorID

			if _, err := stmt.ExecContext(ctx, deviceValues(d)...); err != nil {
				switch {
				case isForeignKeyViolation(err):
					return fmt.Errorf("%w: donor %s", common.ErrNotFound, donorID)
				case isConstraintViolation(err):
					return fmt.Errorf("%w: device %s", common.ErrDuplicateEntry, d.Device.ID)
				default:
					return fmt.Errorf("failed to save device %d: %w", i, err)
				}
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	for i := range rows {
		donations[i].Device.ID = rows[i].Device.ID
		donations[i].Device.DonorID = donorID
	}
	return nil
}

// GetDonations returns stored donations matching filter, oldest first.
func (s *SQLiteStorage) GetDonations(ctx context.Context, filter service.DonationFilter) ([]model.Donation, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateFilter(filter); err != nil {
		return nil, err
	}

	var (
		where []string
		args  []any
	)
	if filter.DonorID != "" {
		where = append(where, "donor_id = ?")
		args = append(args, filter.DonorID)
	}
	if filter.StartDate != nil {
		where = append(where, "date_donated >= ?")
		args = append(args, filter.StartDate.UTC())
	}
	if filter.EndDate != nil {
		where = append(where, "date_donated < ?")
		args = append(args, filter.EndDate.UTC())
	}
	if filter.Type != "" {
		where = append(where, "device_type = ?")
		args = append(args, string(filter.Type))
	}
	if filter.Verified != nil {
		where = append(where, "verified = ?")
		args = append(args, *filter.Verified)
	}

	var query strings.Builder
	fmt.Fprintf(&query, "SELECT %s FROM devices", strings.Join(deviceColumns, ", "))
	if len(where) > 0 {
		query.WriteString(" WHERE " + strings.Join(where, " AND "))
	}
	query.WriteString(" ORDER BY date_donated, id")
	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
		if filter.Offset > 0 {
			query.WriteString(" OFFSET ?")
			args = append(args, filter.Offset)
		}
	}

	return s.queryDonations(ctx, query.String(), args...)
}

// GetDonationHistory returns every device donorID has donated, ordered by
// donation date ascending. An unknown donor yields common.ErrNotFound.
func (s *SQLiteStorage) GetDonationHistory(ctx context.Context, donorID string) ([]model.Device, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if _, err := s.GetDonor(ctx, donorID); err != nil {
		return nil, err
	}

	donations, err := s.GetDonations(ctx, service.DonationFilter{DonorID: donorID})
	if err != nil {
		return nil, err
	}

	history := make([]model.Device, len(donations))
	for i, d := range donations {
		history[i] = d.Device
	}
	return history, nil
}

// SetVerified marks a stored device as checked by staff, or clears the mark.
func (s *SQLiteStorage) SetVerified(ctx context.Context, deviceID string, verified bool) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(deviceID, "deviceID"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `UPDATE devices SET verified = ? WHERE id = ?`, verified, deviceID)
	if err != nil {
		return fmt.Errorf("failed to update device: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: device %s", common.ErrNotFound, deviceID)
	}
	return nil
}

func (s *SQLiteStorage) queryDonations(ctx context.Context, query string, args ...any) ([]model.Donation, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query devices: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var donations []model.Donation
	for rows.Next() {
		d, err := scanDonation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan device: %w", err)
		}
		donations = append(donations, d)
	}
	return donations, rows.Err()
}

func deviceValues(d *model.Donation) []any {
	dev := d.Device
	values := []any{
		dev.ID, dev.DonorID, dev.DateDonated.UTC(), string(dev.Type), nullString(dev.Model),
		nullString(dev.Manufacturer), nullString(dev.SerialNumber), string(dev.Condition),
		dev.Weight, dev.Verified,
	}
	for _, m := range model.Materials {
		values = append(values, d.Impact.Materials.Get(m))
	}
	return append(values, d.Impact.CO2)
}

func scanDonation(row scanner) (model.Donation, error) {
	var (
		d                       model.Donation
		deviceType, condition   string
		modelName, manufacturer sql.NullString
		serialNumber            sql.NullString
	)
	materials := make([]float64, len(model.Materials))

	dest := []any{
		&d.Device.ID, &d.Device.DonorID, &d.Device.DateDonated, &deviceType, &modelName,
		&manufacturer, &serialNumber, &condition, &d.Device.Weight, &d.Device.Verified,
	}
	for i := range materials {
		dest = append(dest, &materials[i])
	}
	dest = append(dest, &d.Impact.CO2)

	if err := row.Scan(dest...); err != nil {
		return model.Donation{}, err
	}

	d.Device.Type = model.DeviceType(deviceType)
	d.Device.Condition = model.Condition(condition)
	d.Device.Model = modelName.String
	d.Device.Manufacturer = manufacturer.String
	d.Device.SerialNumber = serialNumber.String
	for i, m := range model.Materials {
		d.Impact.Materials.Set(m, materials[i])
	}
	return d, nil
}
