// Package queries contains read operations over the record keeper.
// Query handlers go straight to the database with raw SQL, rebuild domain
// aggregates where a domain service needs them (scoping, pricing, metrics)
// and return flat read models shaped for the HTTP layer.
package queries

import (
	"context"
	"database/sql"

	"transport/internal/core/domain/model/kernel"
	"transport/internal/core/domain/model/order"
	"transport/internal/core/domain/model/user"
	"transport/internal/pkg/errs"

	"gorm.io/gorm"
)

// loadActor reconstructs the acting user from the database.
// Returns ObjectNotFoundError for unknown identifiers.
func loadActor(ctx context.Context, db *gorm.DB, actorID kernel.ID) (*user.User, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			username,
			credential_hash,
			role,
			branch_id
		FROM users
		WHERE id = ?
	`, actorID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return nil, err
		}
		return nil, errs.NewObjectNotFoundError("actorId", actorID.String())
	}

	var username, credentialHash, roleName string
	var branchID sql.NullString
	if err = rows.Scan(&username, &credentialHash, &roleName, &branchID); err != nil {
		return nil, err
	}

	return restoreUser(actorID, username, credentialHash, roleName, branchID)
}

func restoreUser(
	id kernel.ID,
	username, credentialHash, roleName string,
	branchID sql.NullString,
) (*user.User, error) {
	role, err := user.RoleFromString(roleName)
	if err != nil {
		return nil, err
	}

	var branchRef *kernel.ID
	if branchID.Valid {
		parsed, idErr := kernel.IDFromStringOfKind(branchID.String, kernel.KindBranch)
		if idErr != nil {
			return nil, idErr
		}
		branchRef = &parsed
	}

	return user.RestoreUser(id, username, credentialHash, role, branchRef)
}

// loadOrders reconstructs every order aggregate in insertion order. Scoping,
// status filtering and pricing happen in memory through the domain services,
// so the SQL stays a plain scan of the orders table.
func loadOrders(ctx context.Context, db *gorm.DB) ([]*order.Order, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			id,
			client_name,
			pickup_address,
			delivery_address,
			pickup_at,
			delivery_at,
			cargo_type,
			cargo_weight,
			vehicle_type,
			status,
			vehicle_id,
			driver_id,
			branch_id,
			distance_km
		FROM orders
		ORDER BY seq
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]*order.Order, 0)
	for rows.Next() {
		restored, scanErr := scanOrder(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, restored)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

func scanOrder(rows *sql.Rows) (*order.Order, error) {
	var (
		rawID, clientName, pickupAddress, deliveryAddress string
		cargoType, vehicleType, statusName                string
		pickupAt, deliveryAt                              sql.NullTime
		cargoWeight                                       float64
		vehicleID, driverID, branchID                     sql.NullString
		distanceKm                                        sql.NullFloat64
	)

	if err := rows.Scan(
		&rawID,
		&clientName,
		&pickupAddress,
		&deliveryAddress,
		&pickupAt,
		&deliveryAt,
		&cargoType,
		&cargoWeight,
		&vehicleType,
		&statusName,
		&vehicleID,
		&driverID,
		&branchID,
		&distanceKm,
	); err != nil {
		return nil, err
	}

	id, err := kernel.IDFromStringOfKind(rawID, kernel.KindOrder)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(statusName)
	if err != nil {
		return nil, err
	}

	vehicleRef, err := optionalID(vehicleID, kernel.KindVehicle)
	if err != nil {
		return nil, err
	}
	driverRef, err := optionalID(driverID, kernel.KindDriver)
	if err != nil {
		return nil, err
	}
	branchRef, err := optionalID(branchID, kernel.KindBranch)
	if err != nil {
		return nil, err
	}

	var distance *float64
	if distanceKm.Valid {
		distance = &distanceKm.Float64
	}

	return order.RestoreOrder(
		id,
		clientName,
		pickupAddress,
		deliveryAddress,
		pickupAt.Time,
		deliveryAt.Time,
		cargoType,
		cargoWeight,
		vehicleType,
		status,
		vehicleRef,
		driverRef,
		branchRef,
		distance,
	)
}

func optionalID(raw sql.NullString, kind kernel.Kind) (*kernel.ID, error) {
	if !raw.Valid {
		return nil, nil
	}
	id, err := kernel.IDFromStringOfKind(raw.String, kind)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// nameIndex loads an id-to-label lookup used to resolve assignment references
// into display names.
func nameIndex(ctx context.Context, db *gorm.DB, query string) (map[string]string, error) {
	rows, err := db.WithContext(ctx).Raw(query).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	index := make(map[string]string)
	for rows.Next() {
		var id, label string
		if err = rows.Scan(&id, &label); err != nil {
			return nil, err
		}
		index[id] = label
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return index, nil
}
