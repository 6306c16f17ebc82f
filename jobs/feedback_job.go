package jobs

import (
	"log"
	"time"

	"github.com/thabisomokotjo/luct_reporting/database"
	"github.com/thabisomokotjo/luct_reporting/models"
)

// CheckPendingFeedback surfaces reports that have sat without principal
// lecturer feedback for over a week. It only logs; the prl acts on it from
// the monitoring view.
func CheckPendingFeedback() {
	log.Println("Running job: CheckPendingFeedback...")

	cutoff := time.Now().AddDate(0, 0, -7)

	var stale []models.Report
	err := database.DB.
		Where("(feedback IS NULL OR feedback = '') AND created_at < ?", cutoff).
		Order("created_at ASC").
		Find(&stale).Error
	if err != nil {
		log.Printf("Error checking for pending feedback: %v", err)
		return
	}

	if len(stale) == 0 {
		log.Println("No reports awaiting feedback.")
		return
	}

	for _, report := range stale {
		log.Printf("Report %s (%s, %s) has been awaiting feedback since %s",
			report.ID, report.CourseName, report.WeekOfReporting,
			report.CreatedAt.Format("2006-01-02"))
	}
	log.Printf("%d report(s) awaiting feedback for over a week.", len(stale))
}
