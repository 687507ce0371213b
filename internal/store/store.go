// Package store manages pipeline state between stages via DuckDB.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	_ "github.com/duckdb/duckdb-go/v2"

	"github.com/intelligrit/adventure-guide/internal/model"
)

// Store persists parsed destinations, run statistics and failed-line
// diagnostics.
type Store struct {
	DB      *sql.DB
	DataDir string
}

// New opens (or creates) a DuckDB database in the given data directory.
func New(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	dbPath := filepath.Join(dataDir, "adventure-guide.duckdb")
	db, err := sql.Open("duckdb", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening duckdb: %w", err)
	}

	s := &Store{DB: db, DataDir: dataDir}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating schema: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.DB.Close()
}

func (s *Store) migrate() error {
	seqs := []string{
		"CREATE SEQUENCE IF NOT EXISTS failed_lines_seq",
	}
	for _, seq := range seqs {
		if _, err := s.DB.Exec(seq); err != nil {
			return fmt.Errorf("creating sequence: %w", err)
		}
	}

	stmts := []string{
		`CREATE TABLE IF NOT EXISTS destinations (
			id INTEGER PRIMARY KEY,
			position INTEGER NOT NULL,
			chapter INTEGER NOT NULL,
			location TEXT NOT NULL,
			latitude DOUBLE NOT NULL,
			longitude DOUBLE NOT NULL,
			lat_direction TEXT NOT NULL,
			lng_direction TEXT NOT NULL,
			country TEXT NOT NULL,
			region TEXT NOT NULL,
			attraction_en TEXT,
			attraction_fr TEXT,
			google_maps_link TEXT,
			map_links TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS failed_lines (
			id INTEGER PRIMARY KEY DEFAULT nextval('failed_lines_seq'),
			line TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,
	}
	for _, stmt := range stmts {
		if _, err := s.DB.Exec(stmt); err != nil {
			return fmt.Errorf("executing migration %q: %w", stmt[:40], err)
		}
	}

	return nil
}

// WriteParseRun replaces all stored parse output with the results of a
// fresh run.
func (s *Store) WriteParseRun(buckets map[int][]model.Destination, stats model.ParseStats, failedLines []string, totalFailed int, parsedAt string) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, tbl := range []string{"destinations", "failed_lines"} {
		if _, err := tx.Exec("DELETE FROM " + tbl); err != nil {
			return fmt.Errorf("clearing %s: %w", tbl, err)
		}
	}

	stmt, err := tx.Prepare(`INSERT INTO destinations
		(id, position, chapter, location, latitude, longitude, lat_direction, lng_direction, country, region, attraction_en, attraction_fr, google_maps_link, map_links)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for chapter := 1; chapter <= 8; chapter++ {
		for pos, d := range buckets[chapter] {
			links, _ := json.Marshal(d.MapLinks)
			if _, err := stmt.Exec(
				d.ID, pos, chapter, d.Location,
				d.Coordinates.Latitude, d.Coordinates.Longitude,
				d.Coordinates.LatitudeDirection, d.Coordinates.LongitudeDirection,
				d.Country, d.Region,
				d.MainAttractionEn, d.MainAttractionFr,
				d.GoogleMapsLink, string(links),
			); err != nil {
				return fmt.Errorf("inserting destination %d: %w", d.ID, err)
			}
		}
	}

	for _, line := range failedLines {
		if _, err := tx.Exec("INSERT INTO failed_lines (line) VALUES (?)", line); err != nil {
			return err
		}
	}

	metaValues := map[string]string{
		"processed":         strconv.Itoa(stats.Processed),
		"successful":        strconv.Itoa(stats.Successful),
		"failed":            strconv.Itoa(stats.Failed),
		"unknown_countries": strconv.Itoa(stats.UnknownCountries),
		"total_failed":      strconv.Itoa(totalFailed),
		"parsed_at":         parsedAt,
	}
	for key, value := range metaValues {
		if _, err := tx.Exec("INSERT OR REPLACE INTO meta (key, value) VALUES (?, ?)", key, value); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func scanDestination(rows *sql.Rows) (model.Destination, int, error) {
	var d model.Destination
	var chapter int
	var attractionEn, attractionFr, mapsLink, links sql.NullString
	err := rows.Scan(
		&d.ID, &chapter, &d.Location,
		&d.Coordinates.Latitude, &d.Coordinates.Longitude,
		&d.Coordinates.LatitudeDirection, &d.Coordinates.LongitudeDirection,
		&d.Country, &d.Region,
		&attractionEn, &attractionFr, &mapsLink, &links,
	)
	if err != nil {
		return d, 0, err
	}
	d.MainAttractionEn = attractionEn.String
	d.MainAttractionFr = attractionFr.String
	d.GoogleMapsLink = mapsLink.String
	if links.Valid {
		json.Unmarshal([]byte(links.String), &d.MapLinks)
	}
	return d, chapter, nil
}

const destinationColumns = `id, chapter, location, latitude, longitude, lat_direction, lng_direction, country, region, attraction_en, attraction_fr, google_maps_link, map_links`

// ReadChapters loads all destinations grouped by chapter, in stored order.
// All 8 chapter keys are present even when empty.
func (s *Store) ReadChapters() (map[int][]model.Destination, error) {
	buckets := make(map[int][]model.Destination, 8)
	for chapter := 1; chapter <= 8; chapter++ {
		buckets[chapter] = nil
	}

	rows, err := s.DB.Query("SELECT " + destinationColumns + " FROM destinations ORDER BY chapter, position")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		d, chapter, err := scanDestination(rows)
		if err != nil {
			return nil, err
		}
		buckets[chapter] = append(buckets[chapter], d)
	}

	return buckets, rows.Err()
}

// ReadDestinations loads every destination in chapter order.
func (s *Store) ReadDestinations() ([]model.Destination, error) {
	rows, err := s.DB.Query("SELECT " + destinationColumns + " FROM destinations ORDER BY chapter, position")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var destinations []model.Destination
	for rows.Next() {
		d, _, err := scanDestination(rows)
		if err != nil {
			return nil, err
		}
		destinations = append(destinations, d)
	}
	return destinations, rows.Err()
}

// UpdateAttractions attaches enrichment text to one destination.
func (s *Store) UpdateAttractions(id int, en, fr string) error {
	_, err := s.DB.Exec("UPDATE destinations SET attraction_en = ?, attraction_fr = ? WHERE id = ?", en, fr, id)
	return err
}

// ReadStats loads the last run's statistics.
func (s *Store) ReadStats() (model.ParseStats, error) {
	var stats model.ParseStats
	fields := map[string]*int{
		"processed":         &stats.Processed,
		"successful":        &stats.Successful,
		"failed":            &stats.Failed,
		"unknown_countries": &stats.UnknownCountries,
	}
	for key, dst := range fields {
		var value sql.NullString
		if err := s.DB.QueryRow("SELECT value FROM meta WHERE key = ?", key).Scan(&value); err != nil {
			if err == sql.ErrNoRows {
				continue
			}
			return stats, err
		}
		n, err := strconv.Atoi(value.String)
		if err != nil {
			return stats, fmt.Errorf("meta %s: %w", key, err)
		}
		*dst = n
	}
	return stats, nil
}

// ReadFailedLines loads the retained failing-line sample and the total
// failure count.
func (s *Store) ReadFailedLines() ([]string, int, error) {
	rows, err := s.DB.Query("SELECT line FROM failed_lines ORDER BY id")
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var lines []string
	for rows.Next() {
		var line string
		if err := rows.Scan(&line); err != nil {
			return nil, 0, err
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	total := len(lines)
	var value sql.NullString
	s.DB.QueryRow("SELECT value FROM meta WHERE key = 'total_failed'").Scan(&value)
	if value.Valid {
		if n, err := strconv.Atoi(value.String); err == nil {
			total = n
		}
	}

	return lines, total, nil
}

// DestinationCount returns how many destinations are stored.
func (s *Store) DestinationCount() int {
	var n int
	s.DB.QueryRow("SELECT COUNT(*) FROM destinations").Scan(&n)
	return n
}

// EnrichedCount returns how many destinations carry attraction text.
func (s *Store) EnrichedCount() int {
	var n int
	s.DB.QueryRow("SELECT COUNT(*) FROM destinations WHERE attraction_en IS NOT NULL AND attraction_en != ''").Scan(&n)
	return n
}

// CountByChapter returns destination counts per chapter.
func (s *Store) CountByChapter() map[int]int {
	m := make(map[int]int)
	rows, err := s.DB.Query("SELECT chapter, COUNT(*) FROM destinations GROUP BY chapter ORDER BY chapter")
	if err != nil {
		return m
	}
	defer rows.Close()
	for rows.Next() {
		var chapter, count int
		rows.Scan(&chapter, &count)
		m[chapter] = count
	}
	return m
}

// CountByCountry returns destination counts per country.
func (s *Store) CountByCountry() map[string]int {
	m := make(map[string]int)
	rows, err := s.DB.Query("SELECT country, COUNT(*) FROM destinations GROUP BY country ORDER BY country")
	if err != nil {
		return m
	}
	defer rows.Close()
	for rows.Next() {
		var country string
		var count int
		rows.Scan(&country, &count)
		m[country] = count
	}
	return m
}
