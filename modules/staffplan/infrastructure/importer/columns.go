package importer

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tum-aet/staffplan/modules/staffplan/domain/position"
)

type column int

const (
	colRelevance column = iota
	colObjectID
	colStatus
	colObjectCode
	colDescription
	colPositionValue
	colDepartmentID
	colOrganizationUnit
	colTariffGroup
	colBaseGrade
	colPercentage
	colStart
	colEnd
	colFund
	colDepartmentID2
	colPersonnelNumber
	colEmployeeGroup
	colEmployeeCircle
	colEntryDate
	colExpectedExit
	colID
	columnCount
)

var columnNames = [columnCount]string{
	"positionRelevanceType", "objectId", "status", "objectCode", "objectDescription",
	"positionValue", "departmentId", "organizationUnit", "tariffGroup", "baseGrade",
	"percentage", "startDate", "endDate", "fund", "departmentId2", "personnelNumber",
	"employeeGroup", "employeeCircle", "entryDate", "expectedExitDate", "id",
}

type headerRule struct {
	col      column
	exact    []string
	contains []string
}

// Order matters: the first matching rule claims the header.
var headerRules = []headerRule{
	{col: colRelevance, contains: []string{"stellenplanrelevanz", "relevance"}},
	{col: colObjectID, exact: []string{"objektid", "objekt id", "object id", "objectid"}},
	{col: colID, exact: []string{"id"}},
	{col: colStatus, exact: []string{"sta", "status"}},
	{col: colObjectCode, contains: []string{"objektkurzel", "object code", "objectcode"}},
	{col: colDescription, contains: []string{"objektbezeichnung", "object description", "objectdescription", "bezeichnung"}},
	{col: colPositionValue, contains: []string{"wert stelle", "position value", "positionvalue"}},
	{col: colDepartmentID2, exact: []string{"department id2", "departmentid2"}},
	{col: colDepartmentID, exact: []string{"department id", "departmentid"}},
	{col: colOrganizationUnit, contains: []string{"organisationseinheit", "organization"}},
	{col: colTariffGroup, contains: []string{"trfgr", "tariff"}},
	{col: colBaseGrade, contains: []string{"bsgrd", "base grade", "basegrade"}},
	{col: colPercentage, exact: []string{"%"}, contains: []string{"prozt", "prozent", "percentage"}},
	{col: colEntryDate, contains: []string{"eintrittsdatum", "entry date", "entrydate"}},
	{col: colExpectedExit, contains: []string{"voraussichtlicher austritt", "expected exit", "expectedexit"}},
	{col: colStart, exact: []string{"start", "start date", "startdate"}, contains: []string{"beginn", "start_date"}},
	{col: colEnd, exact: []string{"end", "end date", "enddate"}, contains: []string{"ende", "end_date"}},
	{col: colFund, exact: []string{"fonds", "fund"}},
	{col: colPersonnelNumber, contains: []string{"persnr", "personnel"}},
	{col: colEmployeeGroup, contains: []string{"mitarbeitergruppe", "employee group", "employeegroup"}},
	{col: colEmployeeCircle, contains: []string{"mitarbeiterkreis", "employee circle", "employeecircle"}},
}

var umlauts = strings.NewReplacer("ü", "u", "ä", "a", "ö", "o", "ß", "ss")

func normalizeHeader(h string) string {
	return umlauts.Replace(strings.ToLower(strings.TrimSpace(h)))
}

func matchHeader(h string) (column, bool) {
	n := normalizeHeader(h)
	if n == "" {
		return 0, false
	}
	for _, rule := range headerRules {
		for _, e := range rule.exact {
			if n == e {
				return rule.col, true
			}
		}
		for _, c := range rule.contains {
			if strings.Contains(n, c) {
				return rule.col, true
			}
		}
	}
	return 0, false
}

// columnMap holds the cell index of each known column, -1 when absent.
type columnMap [columnCount]int

func mapColumns(header []string) columnMap {
	var m columnMap
	for i := range m {
		m[i] = -1
	}
	for i, h := range header {
		if c, ok := matchHeader(h); ok && m[c] < 0 {
			m[c] = i
		}
	}
	return m
}

func (m columnMap) mapped() []string {
	out := make([]string, 0, columnCount)
	for c, i := range m {
		if i >= 0 {
			out = append(out, columnNames[c])
		}
	}
	return out
}

func (m columnMap) get(row []string, c column) string {
	i := m[c]
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func (m columnMap) record(row []string, line int) (position.Record, []LineIssue) {
	var issues []LineIssue
	dec := func(c column) *decimal.Decimal {
		v := m.get(row, c)
		if v == "" {
			return nil
		}
		d, err := parseDecimal(v)
		if err != nil {
			issues = append(issues, LineIssue{Line: line, Column: columnNames[c], Value: v, Reason: "staffplan.importer.bad_decimal"})
			return nil
		}
		return &d
	}
	date := func(c column) string {
		v := m.get(row, c)
		if v == "" {
			return ""
		}
		t, err := parseDate(v)
		if err != nil {
			issues = append(issues, LineIssue{Line: line, Column: columnNames[c], Value: v, Reason: "staffplan.importer.bad_date"})
			return ""
		}
		return t.Format(isoLayout)
	}

	rec := position.Record{
		ID:                    m.get(row, colID),
		ObjectID:              m.get(row, colObjectID),
		Status:                m.get(row, colStatus),
		ObjectCode:            m.get(row, colObjectCode),
		ObjectDescription:     m.get(row, colDescription),
		PositionRelevanceType: m.get(row, colRelevance),
		OrganizationUnit:      m.get(row, colOrganizationUnit),
		DepartmentID:          m.get(row, colDepartmentID),
		DepartmentID2:         m.get(row, colDepartmentID2),
		TariffGroup:           m.get(row, colTariffGroup),
		BaseGrade:             m.get(row, colBaseGrade),
		Fund:                  m.get(row, colFund),
		PositionValue:         dec(colPositionValue),
		PersonnelNumber:       m.get(row, colPersonnelNumber),
		Percentage:            dec(colPercentage),
		StartDate:             date(colStart),
		EndDate:               date(colEnd),
		EmployeeGroup:         m.get(row, colEmployeeGroup),
		EmployeeCircle:        m.get(row, colEmployeeCircle),
		EntryDate:             date(colEntryDate),
		ExpectedExitDate:      date(colExpectedExit),
	}
	if rec.ID == "" {
		rec.ID = syntheticID(line)
	}
	return rec, issues
}
