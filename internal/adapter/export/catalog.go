package export

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"dental_lab/internal/domain/entities"
	"dental_lab/internal/usecase"

	"github.com/xuri/excelize/v2"
)

const (
	catalogSheet    = "Catálogo"
	categoriesSheet = "Categorías"
)

var ErrMissingColumn = errors.New("missing required column")

type catalogColumn int

const (
	colName catalogColumn = iota
	colCategory
	colPrice
)

// Header synonyms, compared after normalizeHeader.
var catalogColumnSynonyms = map[string]catalogColumn{
	"nombre":    colName,
	"name":      colName,
	"servicio":  colName,
	"categoria": colCategory,
	"category":  colCategory,
	"tipo":      colCategory,
	"precio":    colPrice,
	"price":     colPrice,
	"valor":     colPrice,
	"costo":     colPrice,
}

var accentFolder = strings.NewReplacer(
	"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u", "ü", "u", "ñ", "n",
)

func normalizeHeader(s string) string {
	return accentFolder.Replace(strings.ToLower(strings.TrimSpace(s)))
}

// WriteCatalogTemplate writes an empty import sheet with one example row and a
// second sheet listing the accepted categories.
func WriteCatalogTemplate(w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(catalogSheet)
	if err != nil {
		return err
	}
	f.SetActiveSheet(index)

	headerStyle, _ := f.NewStyle(headerStyleDef())
	if err := f.SetSheetRow(catalogSheet, "A1", &[]string{"Nombre", "Categoría", "Precio"}); err != nil {
		return err
	}
	f.SetCellStyle(catalogSheet, "A1", "C1", headerStyle)
	f.SetColWidth(catalogSheet, "A", "A", 40)
	f.SetColWidth(catalogSheet, "B", "C", 20)
	if err := f.SetSheetRow(catalogSheet, "A2", &[]any{"Corona de zirconia", entities.CategoryCorona.Label(), 250000}); err != nil {
		return err
	}

	if _, err := f.NewSheet(categoriesSheet); err != nil {
		return err
	}
	f.SetSheetRow(categoriesSheet, "A1", &[]string{"Código", "Categoría"})
	f.SetCellStyle(categoriesSheet, "A1", "B1", headerStyle)
	for i, c := range entities.Categories() {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		f.SetSheetRow(categoriesSheet, cell, &[]string{string(c), c.Label()})
	}

	f.DeleteSheet("Sheet1")
	return f.Write(w)
}

// ParseCatalog reads the first sheet of an import workbook. The header row is
// matched against the synonym table; rows with an unknown category, an
// unparsable price or no name are returned as rejections. Blank rows are skipped.
func ParseCatalog(r io.Reader) ([]usecase.CatalogImportRow, []usecase.CatalogImportRejection, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, fmt.Errorf("%w: empty workbook", ErrMissingColumn)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, nil, err
	}
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("%w: no header row", ErrMissingColumn)
	}

	idx := map[catalogColumn]int{}
	for i, h := range rows[0] {
		if col, ok := catalogColumnSynonyms[normalizeHeader(h)]; ok {
			if _, seen := idx[col]; !seen {
				idx[col] = i
			}
		}
	}
	for col, name := range map[catalogColumn]string{colName: "nombre", colCategory: "categoria", colPrice: "precio"} {
		if _, ok := idx[col]; !ok {
			return nil, nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}

	cell := func(row []string, col catalogColumn) string {
		if i := idx[col]; i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	var parsed []usecase.CatalogImportRow
	var rejected []usecase.CatalogImportRejection
	for i, row := range rows[1:] {
		sheetRow := i + 2
		name, rawCategory, rawPrice := cell(row, colName), cell(row, colCategory), cell(row, colPrice)
		if name == "" && rawCategory == "" && rawPrice == "" {
			continue
		}

		reject := func(reason string) {
			rejected = append(rejected, usecase.CatalogImportRejection{Row: sheetRow, Name: name, Reason: reason})
		}
		if name == "" {
			reject("nombre vacío")
			continue
		}
		category, ok := ParseCategory(rawCategory)
		if !ok {
			reject(fmt.Sprintf("categoría desconocida %q", rawCategory))
			continue
		}
		price, err := ParsePrice(rawPrice)
		if err != nil || price <= 0 {
			reject(fmt.Sprintf("precio inválido %q", rawPrice))
			continue
		}
		parsed = append(parsed, usecase.CatalogImportRow{Row: sheetRow, Name: name, Category: category, Price: price})
	}
	return parsed, rejected, nil
}

// ParseCategory accepts a category code or its display label, ignoring case
// and accents. Singular forms of the labels are accepted too.
func ParseCategory(s string) (entities.Category, bool) {
	n := normalizeHeader(s)
	if n == "" {
		return "", false
	}
	for _, c := range entities.Categories() {
		label := normalizeHeader(c.Label())
		if n == string(c) || n == label || n+"s" == label || n+"es" == label {
			return c, true
		}
	}
	return "", false
}

// ParsePrice reads a whole amount, dropping a currency sign and thousands
// separators ("$ 250.000" -> 250000).
func ParsePrice(s string) (int64, error) {
	clean := strings.NewReplacer("$", "", " ", "", ".", "", ",", "").Replace(strings.TrimSpace(s))
	return strconv.ParseInt(clean, 10, 64)
}
