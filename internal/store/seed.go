package store

import (
	"time"

	"importflow/internal/dossier"
)

// Seed returns the demo dossier collection used on first start and after a
// reset. Stage-entry and history timestamps are expressed relative to the
// given time so the SLA picture is meaningful whenever the seed is applied.
func Seed(now time.Time) []*dossier.Dossier {
	now = now.UTC()
	return []*dossier.Dossier{
		{
			ID:             "IMP-24097",
			Supplier:       "LabGen Pharma",
			Warehouse:      "WeStorage",
			TransportMode:  "Ocean",
			Incoterm:       "CIF",
			Forwarder:      "DHL GF",
			ETA:            date(2025, time.September, 21),
			StageIndex:     2, // QF Review
			Responsible:    dossier.RoleQF,
			AllowanceHours: 24,
			StageEntry:     now.Add(-2 * time.Hour),
			Products: []dossier.Product{
				{SKU: "RX-202", Description: "Paracetamol 500mg", Registration: "ISP-1234", StorageCondition: "15-25°C"},
			},
			Documents: map[dossier.DocID]dossier.DocStatus{
				dossier.DocInvoice:               dossier.DocApproved,
				dossier.DocPackingList:           dossier.DocApproved,
				dossier.DocBillOfLading:          dossier.DocUploaded,
				dossier.DocSafetyDataSheet:       dossier.DocApproved,
				dossier.DocHealthRegistration:    dossier.DocPending,
				dossier.DocImportPermit:          dossier.DocPending,
				dossier.DocCertificateOfAnalysis: dossier.DocPending,
				dossier.DocLabeling:              dossier.DocPending,
			},
			History: dossier.History{
				{At: now.Add(-2 * time.Hour), Actor: dossier.ActorSystem, Message: "Sent to QF review"},
				{At: now.Add(-20 * time.Hour), Actor: string(dossier.RoleCOMEX), Message: "Base documents reviewed"},
				{At: now.Add(-26 * time.Hour), Actor: string(dossier.RoleCOMEX), Message: "Pre-Alert created"},
			},
		},
		{
			ID:             "IMP-24122",
			Supplier:       "Farmacorp",
			Warehouse:      "Loginsa",
			TransportMode:  "Air",
			Incoterm:       "DAP",
			Forwarder:      "K+N",
			ETA:            date(2025, time.August, 30),
			StageIndex:     1, // COMEX Review
			Responsible:    dossier.RoleCOMEX,
			AllowanceHours: 8,
			StageEntry:     now.Add(-6 * time.Hour),
			Products: []dossier.Product{
				{SKU: "COS-88", Description: "Facial Cream 50ml", Registration: "Notified Cosmetic", StorageCondition: "Ambient"},
			},
			Documents: map[dossier.DocID]dossier.DocStatus{
				dossier.DocInvoice:             dossier.DocUploaded,
				dossier.DocPackingList:         dossier.DocPending,
				dossier.DocBillOfLading:        dossier.DocPending,
				dossier.DocSafetyDataSheet:     dossier.DocPending,
				dossier.DocCertificateOfOrigin: dossier.DocPending,
			},
			History: dossier.History{
				{At: now.Add(-6 * time.Hour), Actor: string(dossier.RoleCOMEX), Message: "Review pending"},
			},
		},
		{
			ID:             "IMP-24160",
			Supplier:       "BioHealth EU",
			Warehouse:      "Concon",
			TransportMode:  "Ocean",
			Incoterm:       "FOB",
			Forwarder:      "DB Schenker",
			ETA:            date(2025, time.October, 5),
			StageIndex:     3, // Entry Scheduling
			Responsible:    dossier.RoleOperations,
			AllowanceHours: 12,
			StageEntry:     now.Add(-4 * time.Hour),
			Products: []dossier.Product{
				{SKU: "BIO-71", Description: "Laboratory reagents", Registration: "ISP-5678", StorageCondition: "2-8°C"},
			},
			Documents: map[dossier.DocID]dossier.DocStatus{
				dossier.DocInvoice:            dossier.DocApproved,
				dossier.DocPackingList:        dossier.DocApproved,
				dossier.DocBillOfLading:       dossier.DocApproved,
				dossier.DocSafetyDataSheet:    dossier.DocApproved,
				dossier.DocHealthRegistration: dossier.DocApproved,
			},
			History: dossier.History{
				{At: now.Add(-40 * time.Hour), Actor: string(dossier.RoleQF), Message: "Regulatory approval OK"},
			},
		},
	}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
