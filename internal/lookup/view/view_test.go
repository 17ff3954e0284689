package view

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lookupdesk/internal/card"
	"lookupdesk/internal/lookup/models"
)

func TestRowsPhoneReadsDataMember(t *testing.T) {
	payload := json.RawMessage(`{"success":true,"data":{"name":"Asha","phone":"1234567890","city":"","operator":"Jio"}}`)

	rows := Rows(models.DomainPhone, payload)

	assert.Equal(t, []Row{
		{Label: "Phone", Value: "1234567890"},
		{Label: "Name", Value: "Asha"},
		{Label: "Operator", Value: "Jio"},
	}, rows)
}

func TestRowsVehicleFlatPayload(t *testing.T) {
	payload := json.RawMessage(`{"rc_number":"MP07SD7547","owner_name":"RAVI","chasis_number":"X1"}`)

	rows := Rows(models.DomainVehicle, payload)

	require.Len(t, rows, 3)
	assert.Equal(t, Row{Label: "Chassis", Value: "X1"}, rows[2])
}

func TestRowsNationalIDJoinsFamilyMembers(t *testing.T) {
	payload := json.RawMessage(`{"data":{"name":"B","family_members":["C","D"],"phone":9876543210}}`)

	rows := Rows(models.DomainNationalID, payload)

	assert.Equal(t, []Row{
		{Label: "Name", Value: "B"},
		{Label: "Phone", Value: "9876543210"},
		{Label: "Family Members", Value: "C, D"},
	}, rows)
}

func TestRowsCard(t *testing.T) {
	raw, err := json.Marshal(card.Analyze("4539578763621486"))
	require.NoError(t, err)

	rows := Rows(models.DomainCard, raw)

	require.Len(t, rows, 7)
	assert.Equal(t, Row{Label: "Card Number", Value: "4539 •••• •••• 1486"}, rows[0])
	assert.Equal(t, Row{Label: "Brand", Value: "VISA"}, rows[2])
	assert.Equal(t, Row{Label: "Card Length", Value: "16 digits"}, rows[5])
	assert.Equal(t, Row{Label: "Valid", Value: "Yes"}, rows[6])
}

func TestRowsUndecodable(t *testing.T) {
	assert.Empty(t, Rows(models.DomainPhone, json.RawMessage(`[1,2]`)))
	assert.Empty(t, Rows(models.DomainCard, json.RawMessage(`nope`)))
}
