package main

import (
	"log"
	"time"

	"gorm.io/gorm"

	"waste-report-server/models"
	"waste-report-server/utils"
)

// demoWorkerPassword is the login password of every seeded worker
const demoWorkerPassword = "worker123"

type seedComplaint struct {
	models.Complaint
	workerName string
}

func day(month time.Month, d int) time.Time {
	return time.Date(2024, month, d, 0, 0, 0, 0, time.UTC)
}

func ptr[T any](v T) *T {
	return &v
}

func demoWorkers() []models.Worker {
	return []models.Worker{
		{Name: "Rajesh Kumar", Email: "rajesh@waste.gov", Location: "Sector 15", Panchayat: "Green Valley Panchayat"},
		{Name: "Priya Sharma", Email: "priya@waste.gov", Location: "Sector 22", Panchayat: "Green Valley Panchayat"},
		{Name: "Amit Singh", Email: "amit@waste.gov", Location: "Main Road", Panchayat: "Riverside Panchayat"},
	}
}

func demoComplaints() []seedComplaint {
	return []seedComplaint{
		{
			Complaint: models.Complaint{
				Title:       "Overflowing Garbage Bin",
				Description: "The garbage bin near the market is overflowing and creating a mess. Urgent attention needed.",
				Location:    "Main Market, Sector 15",
				PhotoURL:    ptr("/overflowing-garbage-bin.png"),
				Status:      models.StatusPending,
				CreatedAt:   day(time.January, 15),
				Deadline:    ptr(day(time.January, 20)),
			},
			workerName: "Rajesh Kumar",
		},
		{
			Complaint: models.Complaint{
				Title:         "Illegal Dumping",
				Description:   "Construction waste has been illegally dumped in the park area.",
				Location:      "Green Park, Sector 22",
				PhotoURL:      ptr("/illegal-construction-waste.png"),
				Status:        models.StatusResolved,
				CreatedAt:     day(time.January, 10),
				ResolvedAt:    ptr(day(time.January, 14)),
				AfterPhotoURL: ptr("/clean-park-after-cleanup.png"),
			},
			workerName: "Priya Sharma",
		},
		{
			Complaint: models.Complaint{
				Title:       "Broken Waste Container",
				Description: "The waste container is broken and garbage is scattered around.",
				Location:    "Bus Stop, Main Road",
				PhotoURL:    ptr("/broken-waste-container.png"),
				Status:      models.StatusPending,
				CreatedAt:   day(time.January, 12),
				Deadline:    ptr(day(time.January, 18)),
			},
			workerName: "Amit Singh",
		},
		{
			Complaint: models.Complaint{
				Title:         "Plastic Waste Accumulation",
				Description:   "Large amount of plastic waste has accumulated near the river bank.",
				Location:      "River Bank, East Side",
				PhotoURL:      ptr("/plastic-waste-riverbank.png"),
				Status:        models.StatusResolved,
				CreatedAt:     day(time.January, 8),
				ResolvedAt:    ptr(day(time.January, 13)),
				AfterPhotoURL: ptr("/clean-river-bank.png"),
			},
			workerName: "Rajesh Kumar",
		},
		{
			Complaint: models.Complaint{
				Title:       "Medical Waste Disposal",
				Description: "Medical waste found disposed improperly near residential area.",
				Location:    "Residential Colony, Block A",
				PhotoURL:    ptr("/improper-medical-waste.png"),
				Status:      models.StatusPending,
				CreatedAt:   day(time.January, 14),
				Deadline:    ptr(day(time.January, 19)),
			},
			workerName: "Priya Sharma",
		},
	}
}

func demoPanchayats() []models.Panchayat {
	return []models.Panchayat{
		{Name: "Green Valley Panchayat", Location: "Sector 15", ContactEmail: "greenvalley@panchayat.gov", TotalComplaints: 120, ResolvedCount: 108, UnaddressedCount: 12, ResolutionRate: 90, AverageResolutionDays: 2.5},
		{Name: "Riverside Panchayat", Location: "East Side", ContactEmail: "riverside@panchayat.gov", TotalComplaints: 95, ResolvedCount: 71, UnaddressedCount: 24, ResolutionRate: 74.7, AverageResolutionDays: 4.1},
		{Name: "Hill View Panchayat", Location: "Main Road", ContactEmail: "hillview@panchayat.gov", TotalComplaints: 80, ResolvedCount: 48, UnaddressedCount: 32, ResolutionRate: 60, AverageResolutionDays: 6.3},
		{Name: "Lakeside Panchayat", Location: "Block A", ContactEmail: "lakeside@panchayat.gov", TotalComplaints: 60, ResolvedCount: 50, UnaddressedCount: 10, ResolutionRate: 83.3, AverageResolutionDays: 3.2},
	}
}

// seedDemoData fills empty tables with the demo data set. Tables that
// already hold rows are left untouched.
func seedDemoData(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		workerIDs, err := seedWorkers(tx)
		if err != nil {
			return err
		}
		if err := seedComplaints(tx, workerIDs); err != nil {
			return err
		}
		return seedPanchayats(tx)
	})
}

func seedWorkers(tx *gorm.DB) (map[string]uint, error) {
	var count int64
	if err := tx.Model(&models.Worker{}).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		hash, err := utils.HashPassword(demoWorkerPassword)
		if err != nil {
			return nil, err
		}
		workers := demoWorkers()
		for i := range workers {
			workers[i].PasswordHash = hash
		}
		if err := tx.Create(&workers).Error; err != nil {
			return nil, err
		}
		log.Printf("✅ Seeded %d workers (password %q)", len(workers), demoWorkerPassword)
	} else {
		log.Printf("⚠️  Workers already present, skipping")
	}

	var existing []models.Worker
	if err := tx.Find(&existing).Error; err != nil {
		return nil, err
	}
	ids := make(map[string]uint, len(existing))
	for _, w := range existing {
		ids[w.Name] = w.ID
	}
	return ids, nil
}

func seedComplaints(tx *gorm.DB, workerIDs map[string]uint) error {
	var count int64
	if err := tx.Model(&models.Complaint{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Printf("⚠️  Complaints already present, skipping")
		return nil
	}

	for _, sc := range demoComplaints() {
		c := sc.Complaint
		if id, ok := workerIDs[sc.workerName]; ok {
			c.AssignedWorkerID = ptr(id)
		}
		if err := tx.Create(&c).Error; err != nil {
			return err
		}
	}
	log.Printf("✅ Seeded %d complaints", len(demoComplaints()))
	return nil
}

func seedPanchayats(tx *gorm.DB) error {
	var count int64
	if err := tx.Model(&models.Panchayat{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Printf("⚠️  Panchayats already present, skipping")
		return nil
	}

	panchayats := demoPanchayats()
	if err := tx.Create(&panchayats).Error; err != nil {
		return err
	}
	log.Printf("✅ Seeded %d panchayats", len(panchayats))
	return nil
}
