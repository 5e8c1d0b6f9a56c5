package sheetssql

import (
	"fmt"
	"strings"
)

// fakeClient keeps tabs in memory. Ranges of the form "tab!1:2" return the first two rows.
type fakeClient struct {
	tabs    map[string][][]interface{}
	order   []string
	created []string
	getErr  error
}

func newFakeClient() *fakeClient {
	return &fakeClient{tabs: make(map[string][][]interface{})}
}

func (c *fakeClient) addTab(name string, rows ...[]interface{}) {
	c.tabs[name] = rows
	c.order = append(c.order, name)
}

func (c *fakeClient) GetValues(spreadsheetID, sheetRange string) ([][]interface{}, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	name, limit, _ := strings.Cut(sheetRange, "!")
	rows, ok := c.tabs[name]
	if !ok {
		return nil, fmt.Errorf("unknown tab %s", name)
	}
	if limit == "1:2" && len(rows) > 2 {
		return rows[:2], nil
	}
	return rows, nil
}

func (c *fakeClient) AppendRows(spreadsheetID, sheetRange string, values [][]interface{}) error {
	c.tabs[sheetRange] = append(c.tabs[sheetRange], values...)
	return nil
}

func (c *fakeClient) CreateSheet(spreadsheetID, sheetTitle string) (int64, error) {
	c.created = append(c.created, sheetTitle)
	c.addTab(sheetTitle)
	return int64(len(c.order)), nil
}

func (c *fakeClient) SheetTitles(spreadsheetID string) ([]string, error) {
	return c.order, nil
}
