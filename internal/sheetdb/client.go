// Package sheetdb talks to a Google Sheets document used as a makeshift
// database: one tab per collection, first row is the header, one row per
// record. Tabs are addressed by title.
package sheetdb

import (
	"context"
	"encoding/pem"
	"fmt"

	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/Pleasure08/gplsmarthubb/internal/store"
)

const spreadsheetScope = "https://www.googleapis.com/auth/spreadsheets"

// Document is an open spreadsheet.
type Document interface {
	// Tab returns the sheet with the given title, or ErrTabNotFound.
	Tab(ctx context.Context, title string) (Tab, error)
	// CreateTab adds a sheet with the given title and header row.
	CreateTab(ctx context.Context, title string, headers []string) (Tab, error)
}

// Tab is one sheet within the document. Row indexes are zero-based over
// data rows; the header row is not counted.
type Tab interface {
	Title() string
	Headers(ctx context.Context) ([]string, error)
	SetHeaders(ctx context.Context, headers []string) error
	Rows(ctx context.Context) ([][]string, error)
	AppendRow(ctx context.Context, row []string) error
	UpdateRow(ctx context.Context, index int, row []string) error
	DeleteRow(ctx context.Context, index int) error
	ClearRows(ctx context.Context) error
}

// Open authenticates with a service-account JWT and verifies the document
// is reachable. Credential rejections surface as AuthError and an
// invalid or inaccessible document ID as ErrNotFound.
func Open(ctx context.Context, serviceAccountEmail, privateKeyPEM, spreadsheetID string) (Document, error) {
	if block, _ := pem.Decode([]byte(privateKeyPEM)); block == nil {
		return nil, &store.AuthError{Reason: "service account private key is not valid PEM"}
	}
	conf := &jwt.Config{
		Email:      serviceAccountEmail,
		PrivateKey: []byte(privateKeyPEM),
		Scopes:     []string{spreadsheetScope},
		TokenURL:   google.JWTTokenURL,
	}
	svc, err := sheets.NewService(ctx, option.WithHTTPClient(conf.Client(ctx)))
	if err != nil {
		return nil, classify(err)
	}
	doc := &document{svc: svc, id: spreadsheetID}
	if _, err := doc.meta(ctx); err != nil {
		return nil, err
	}
	return doc, nil
}

type document struct {
	svc *sheets.Service
	id  string
}

func (d *document) meta(ctx context.Context) (*sheets.Spreadsheet, error) {
	ss, err := d.svc.Spreadsheets.Get(d.id).Context(ctx).Do()
	if err != nil {
		return nil, classify(err)
	}
	return ss, nil
}

func (d *document) Tab(ctx context.Context, title string) (Tab, error) {
	ss, err := d.meta(ctx)
	if err != nil {
		return nil, err
	}
	for _, s := range ss.Sheets {
		if s.Properties != nil && s.Properties.Title == title {
			return &tab{doc: d, title: title, sheetID: s.Properties.SheetId}, nil
		}
	}
	return nil, ErrTabNotFound
}

func (d *document) CreateTab(ctx context.Context, title string, headers []string) (Tab, error) {
	req := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			AddSheet: &sheets.AddSheetRequest{
				Properties: &sheets.SheetProperties{Title: title},
			},
		}},
	}
	resp, err := d.svc.Spreadsheets.BatchUpdate(d.id, req).Context(ctx).Do()
	if err != nil {
		return nil, classify(err)
	}
	var sheetID int64
	if len(resp.Replies) > 0 && resp.Replies[0].AddSheet != nil && resp.Replies[0].AddSheet.Properties != nil {
		sheetID = resp.Replies[0].AddSheet.Properties.SheetId
	}
	t := &tab{doc: d, title: title, sheetID: sheetID}
	if len(headers) > 0 {
		if err := t.SetHeaders(ctx, headers); err != nil {
			return nil, err
		}
	}
	return t, nil
}

type tab struct {
	doc     *document
	title   string
	sheetID int64
}

func (t *tab) Title() string { return t.title }

func (t *tab) rangeOf(a1 string) string {
	return fmt.Sprintf("'%s'!%s", t.title, a1)
}

func (t *tab) Headers(ctx context.Context) ([]string, error) {
	resp, err := t.doc.svc.Spreadsheets.Values.Get(t.doc.id, t.rangeOf("1:1")).Context(ctx).Do()
	if err != nil {
		return nil, classify(err)
	}
	if len(resp.Values) == 0 {
		return nil, nil
	}
	return toStrings(resp.Values[0]), nil
}

func (t *tab) SetHeaders(ctx context.Context, headers []string) error {
	vr := &sheets.ValueRange{Values: [][]any{toCells(headers)}}
	_, err := t.doc.svc.Spreadsheets.Values.Update(t.doc.id, t.rangeOf("A1"), vr).
		ValueInputOption("RAW").Context(ctx).Do()
	return classify(err)
}

func (t *tab) Rows(ctx context.Context) ([][]string, error) {
	resp, err := t.doc.svc.Spreadsheets.Values.Get(t.doc.id, t.rangeOf("A2:ZZ")).Context(ctx).Do()
	if err != nil {
		return nil, classify(err)
	}
	rows := make([][]string, 0, len(resp.Values))
	for _, v := range resp.Values {
		rows = append(rows, toStrings(v))
	}
	return rows, nil
}

func (t *tab) AppendRow(ctx context.Context, row []string) error {
	vr := &sheets.ValueRange{Values: [][]any{toCells(row)}}
	_, err := t.doc.svc.Spreadsheets.Values.Append(t.doc.id, t.rangeOf("A1"), vr).
		ValueInputOption("RAW").InsertDataOption("INSERT_ROWS").Context(ctx).Do()
	return classify(err)
}

func (t *tab) UpdateRow(ctx context.Context, index int, row []string) error {
	vr := &sheets.ValueRange{Values: [][]any{toCells(row)}}
	a1 := fmt.Sprintf("A%d", index+2)
	_, err := t.doc.svc.Spreadsheets.Values.Update(t.doc.id, t.rangeOf(a1), vr).
		ValueInputOption("RAW").Context(ctx).Do()
	return classify(err)
}

func (t *tab) DeleteRow(ctx context.Context, index int) error {
	req := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			DeleteDimension: &sheets.DeleteDimensionRequest{
				Range: &sheets.DimensionRange{
					SheetId:    t.sheetID,
					Dimension:  "ROWS",
					StartIndex: int64(index + 1),
					EndIndex:   int64(index + 2),
				},
			},
		}},
	}
	_, err := t.doc.svc.Spreadsheets.BatchUpdate(t.doc.id, req).Context(ctx).Do()
	return classify(err)
}

func (t *tab) ClearRows(ctx context.Context) error {
	_, err := t.doc.svc.Spreadsheets.Values.Clear(t.doc.id, t.rangeOf("A2:ZZ"), &sheets.ClearValuesRequest{}).
		Context(ctx).Do()
	return classify(err)
}

func toCells(row []string) []any {
	out := make([]any, len(row))
	for i, c := range row {
		out[i] = c
	}
	return out
}

func toStrings(row []any) []string {
	out := make([]string, len(row))
	for i, c := range row {
		out[i] = fmt.Sprint(c)
	}
	return out
}
