package gpkg

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/cartoforge/mapidx/models"
	"github.com/cartoforge/mapidx/pkg/geometry"
)

// Attribute fields of an index feature class. The geometry column is fixed
// to "geom"; fid is the SQLite rowid alias required by the GeoPackage spec.
const (
	GeomColumn   = "geom"
	NameField    = "Name"
	ScaleField   = "Scale"
	PageNumField = "PageNum"
)

// FeatureClass is a polygon feature table inside a Store.
type FeatureClass struct {
	store *Store
	Table string
	SRID  int
}

// CreateFeatureClass creates an empty polygon feature table with the three
// index attribute fields. It fails when the table name is invalid or
// already present in the container, or when the spatial reference cannot be
// resolved. None of these are retried.
func (s *Store) CreateFeatureClass(table string, srs models.SpatialReference) (*FeatureClass, error) {
	if !validIdent(table) {
		return nil, fmt.Errorf("invalid feature class name %q", table)
	}
	if srs.SRID <= 0 {
		return nil, fmt.Errorf("cannot resolve spatial reference (srid %d)", srs.SRID)
	}

	var existing string
	err := s.QueryRow(
		"SELECT table_name FROM gpkg_contents WHERE table_name = ?", table,
	).Scan(&existing)
	if err == nil {
		return nil, fmt.Errorf("feature class %q already exists in %s", table, s.path)
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to check existing feature class: %w", err)
	}

	if err := s.ensureSRS(srs); err != nil {
		return nil, err
	}

	ddl := fmt.Sprintf(`CREATE TABLE "%s" (
		fid INTEGER PRIMARY KEY AUTOINCREMENT,
		"%s" BLOB NOT NULL,
		"%s" TEXT,
		"%s" INTEGER,
		"%s" INTEGER
	)`, table, GeomColumn, NameField, ScaleField, PageNumField)
	if _, err := s.Exec(ddl); err != nil {
		return nil, fmt.Errorf("failed to create feature class: %w", err)
	}

	if _, err := s.Exec(`
		INSERT INTO gpkg_contents (table_name, data_type, identifier, srs_id)
		VALUES (?, 'features', ?, ?)
	`, table, table, srs.SRID); err != nil {
		return nil, fmt.Errorf("failed to register feature class: %w", err)
	}

	if _, err := s.Exec(`
		INSERT INTO gpkg_geometry_columns (table_name, column_name, geometry_type_name, srs_id, z, m)
		VALUES (?, ?, 'POLYGON', ?, 0, 0)
	`, table, GeomColumn, srs.SRID); err != nil {
		return nil, fmt.Errorf("failed to register geometry column: %w", err)
	}

	return &FeatureClass{store: s, Table: table, SRID: srs.SRID}, nil
}

// ensureSRS registers the spatial reference in gpkg_spatial_ref_sys when it
// is not already present.
func (s *Store) ensureSRS(srs models.SpatialReference) error {
	name := srs.Name
	if name == "" {
		name = fmt.Sprintf("EPSG:%d", srs.SRID)
	}
	definition := srs.WKT
	if definition == "" {
		definition = "undefined"
	}

	_, err := s.Exec(`
		INSERT OR IGNORE INTO gpkg_spatial_ref_sys
			(srs_name, srs_id, organization, organization_coordsys_id, definition)
		VALUES (?, ?, 'EPSG', ?, ?)
	`, name, srs.SRID, srs.SRID, definition)
	if err != nil {
		return fmt.Errorf("failed to register spatial reference: %w", err)
	}
	return nil
}

// Insert appends one index feature. The write uses a statement scoped to
// this call: prepared, executed once, and closed on every exit path, so no
// cursor outlives a single page iteration.
func (fc *FeatureClass) Insert(extent models.Extent, name string, scale int64, pageNum int) error {
	blob, err := encodeGeometry(geometry.Polygon(extent, fc.SRID))
	if err != nil {
		return fmt.Errorf("failed to build page geometry: %w", err)
	}

	query := fmt.Sprintf(
		`INSERT INTO "%s" ("%s", "%s", "%s", "%s") VALUES (?, ?, ?, ?)`,
		fc.Table, GeomColumn, NameField, ScaleField, PageNumField,
	)
	stmt, err := fc.store.Prepare(query)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	if _, err := stmt.Exec(blob, name, scale, pageNum); err != nil {
		return fmt.Errorf("failed to insert feature: %w", err)
	}
	return nil
}

// UpdateBounds writes the feature class bounding box into gpkg_contents.
func (fc *FeatureClass) UpdateBounds(e models.Extent) error {
	_, err := fc.store.Exec(`
		UPDATE gpkg_contents
		SET min_x = ?, min_y = ?, max_x = ?, max_y = ?,
		    last_change = strftime('%Y-%m-%dT%H:%M:%fZ','now')
		WHERE table_name = ?
	`, e.XMin, e.YMin, e.XMax, e.YMax, fc.Table)
	if err != nil {
		return fmt.Errorf("failed to update bounds: %w", err)
	}
	return nil
}

// Feature is one row of an index feature class.
type Feature struct {
	FID     int64
	Name    string
	Scale   int64
	PageNum int
	Extent  models.Extent
}

// ReadFeatures returns the rows of an index feature class in fid order.
// limit <= 0 means all rows.
func (s *Store) ReadFeatures(table string, limit int) ([]Feature, error) {
	if !validIdent(table) {
		return nil, fmt.Errorf("invalid feature class name %q", table)
	}

	query := fmt.Sprintf(
		`SELECT fid, "%s", "%s", "%s", "%s" FROM "%s" ORDER BY fid`,
		GeomColumn, NameField, ScaleField, PageNumField, table,
	)
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err := s.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to read features: %w", err)
	}
	defer rows.Close()

	var features []Feature
	for rows.Next() {
		var f Feature
		var blob []byte
		if err := rows.Scan(&f.FID, &blob, &f.Name, &f.Scale, &f.PageNum); err != nil {
			return nil, fmt.Errorf("failed to scan feature: %w", err)
		}
		g, _, err := decodeGeometry(blob)
		if err != nil {
			return nil, fmt.Errorf("failed to decode feature %d: %w", f.FID, err)
		}
		f.Extent = geometry.EnvelopeOf(g)
		features = append(features, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read features: %w", err)
	}
	return features, nil
}

// IndexRow is a row of a field-driven series' source table: the page label
// plus the feature envelope.
type IndexRow struct {
	Label  string
	Extent models.Extent
}

// IndexRows reads the rows driving a field-driven page series: the value of
// nameField and each feature's envelope, in rowid order. Works against
// feature tables written by other tools, so the geometry column name is
// looked up rather than assumed.
func (s *Store) IndexRows(table, nameField string) ([]IndexRow, error) {
	if !validIdent(table) {
		return nil, fmt.Errorf("invalid table name %q", table)
	}
	if !validIdent(nameField) {
		return nil, fmt.Errorf("invalid field name %q", nameField)
	}

	var geomCol string
	err := s.QueryRow(
		"SELECT column_name FROM gpkg_geometry_columns WHERE table_name = ?", table,
	).Scan(&geomCol)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("table %q is not a feature class in %s", table, s.path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up geometry column: %w", err)
	}
	if !validIdent(geomCol) {
		return nil, fmt.Errorf("invalid geometry column %q", geomCol)
	}

	query := fmt.Sprintf(
		`SELECT "%s", "%s" FROM "%s" ORDER BY rowid`, geomCol, nameField, table,
	)
	rows, err := s.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to read index rows: %w", err)
	}
	defer rows.Close()

	var out []IndexRow
	for rows.Next() {
		var blob []byte
		var label any
		if err := rows.Scan(&blob, &label); err != nil {
			return nil, fmt.Errorf("failed to scan index row: %w", err)
		}
		g, _, err := decodeGeometry(blob)
		if err != nil {
			return nil, fmt.Errorf("failed to decode index row geometry: %w", err)
		}
		out = append(out, IndexRow{
			Label:  labelString(label),
			Extent: geometry.EnvelopeOf(g),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read index rows: %w", err)
	}
	return out, nil
}

// labelString formats an attribute value as a page label. Index fields are
// usually text but numeric grid ids are common too.
func labelString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []byte:
		return string(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// TableInfo summarizes one feature table registered in gpkg_contents.
type TableInfo struct {
	Name         string
	GeometryType string
	SRID         int
	RowCount     int
	Bounds       models.Extent
}

// ListTables returns every feature table in the container.
func (s *Store) ListTables() ([]TableInfo, error) {
	rows, err := s.Query(`
		SELECT c.table_name, g.geometry_type_name, c.srs_id,
		       COALESCE(c.min_x, 0), COALESCE(c.min_y, 0),
		       COALESCE(c.max_x, 0), COALESCE(c.max_y, 0)
		FROM gpkg_contents c
		JOIN gpkg_geometry_columns g ON g.table_name = c.table_name
		WHERE c.data_type = 'features'
		ORDER BY c.table_name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list feature tables: %w", err)
	}
	defer rows.Close()

	var tables []TableInfo
	for rows.Next() {
		var t TableInfo
		if err := rows.Scan(&t.Name, &t.GeometryType, &t.SRID,
			&t.Bounds.XMin, &t.Bounds.YMin, &t.Bounds.XMax, &t.Bounds.YMax); err != nil {
			return nil, fmt.Errorf("failed to scan table info: %w", err)
		}
		tables = append(tables, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list feature tables: %w", err)
	}

	for i := range tables {
		count, err := s.rowCount(tables[i].Name)
		if err != nil {
			return nil, err
		}
		tables[i].RowCount = count
	}
	return tables, nil
}

func (s *Store) rowCount(table string) (int, error) {
	if !validIdent(table) {
		return 0, fmt.Errorf("invalid table name %q", table)
	}
	var n int
	err := s.QueryRow(fmt.Sprintf(`SELECT COUNT(*) FROM "%s"`, table)).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count rows in %s: %w", table, err)
	}
	return n, nil
}
