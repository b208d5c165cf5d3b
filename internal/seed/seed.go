// Package seed generates the fixed demo dataset the store is populated with
// on first run: 25 job postings, a configurable number of candidates,
// assessments for the first three jobs and synthetic per-candidate timelines.
package seed

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"talentflow/internal/domain"
)

// DefaultCandidates matches the demo dataset of the original application
const DefaultCandidates = 1000

var jobTitles = []string{
	"Senior Frontend Developer",
	"Backend Engineer",
	"Full Stack Developer",
	"DevOps Engineer",
	"Product Manager",
	"UX Designer",
	"Data Scientist",
	"Mobile Developer",
	"QA Engineer",
	"Technical Lead",
	"Software Architect",
	"Marketing Manager",
	"Sales Representative",
	"Customer Success Manager",
	"HR Specialist",
	"Financial Analyst",
	"Operations Manager",
	"Content Writer",
	"Graphic Designer",
	"Business Analyst",
	"Project Manager",
	"Security Engineer",
	"Machine Learning Engineer",
	"Cloud Engineer",
	"Site Reliability Engineer",
}

var jobTags = []string{"Remote", "On-site", "Hybrid", "Senior", "Junior", "Mid-level", "Urgent", "New"}

var locations = []string{"New York", "San Francisco", "London", "Berlin", "Toronto", "Remote"}

var jobTypes = []string{domain.JobTypeFullTime, domain.JobTypePartTime, domain.JobTypeContract}

var firstNames = []string{
	"John", "Jane", "Michael", "Sarah", "David", "Emily", "Robert", "Lisa",
	"James", "Maria", "William", "Jennifer", "Richard", "Linda", "Joseph",
	"Elizabeth", "Thomas", "Barbara", "Christopher", "Susan", "Daniel",
	"Jessica", "Matthew", "Karen", "Anthony", "Nancy",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller",
	"Davis", "Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez",
	"Wilson", "Anderson", "Thomas", "Taylor", "Moore", "Jackson", "Martin",
	"Lee", "Perez", "Thompson", "White", "Harris", "Sanchez",
}

var stageOrder = []string{
	domain.StageApplied,
	domain.StageScreen,
	domain.StageTech,
	domain.StageOffer,
	domain.StageHired,
	domain.StageRejected,
}

var noteTexts = []string{
	"Great communication skills during interview",
	"Strong technical background",
	"Good cultural fit for the team",
	"Needs to improve on specific areas",
	"Excellent problem-solving approach",
	"Follow up on reference checks",
	"Schedule next round of interviews",
}

// Generate builds a complete seed snapshot. The fixed source keeps the data
// deterministic run to run.
func Generate(candidateCount int) *domain.Snapshot {
	if candidateCount <= 0 {
		candidateCount = DefaultCandidates
	}
	rng := rand.New(rand.NewSource(42))
	now := time.Now()

	jobs := generateJobs(rng, now)
	candidates := generateCandidates(rng, now, jobs, candidateCount)

	return &domain.Snapshot{
		Jobs:                jobs,
		Candidates:          candidates,
		Assessments:         generateAssessments(jobs, now),
		Timeline:            generateTimeline(rng, candidates),
		AssessmentResponses: []domain.AssessmentResponse{},
	}
}

func generateJobs(rng *rand.Rand, now time.Time) []domain.Job {
	jobs := make([]domain.Job, 0, len(jobTitles))
	for i, title := range jobTitles {
		status := domain.JobStatusActive
		if rng.Float64() <= 0.3 {
			status = domain.JobStatusArchived
		}

		description := fmt.Sprintf("We are looking for a talented %s to join our growing team.", title)
		location := locations[rng.Intn(len(locations))]
		jobType := jobTypes[rng.Intn(len(jobTypes))]

		jobs = append(jobs, domain.Job{
			ID:     strconv.Itoa(i + 1),
			Title:  title,
			Slug:   Slugify(title),
			Status: status,
			Tags:   jobTags[:rng.Intn(3)+1],
			Order:  int64(i + 1),
			Description: &description,
			Requirements: []string{
				"3+ years of experience",
				"Strong communication skills",
				"Team player",
				"Problem-solving abilities",
			},
			Location:  &location,
			Type:      &jobType,
			CreatedAt: now.Add(-time.Duration(rng.Intn(30*24)) * time.Hour),
			UpdatedAt: now,
		})
	}
	return jobs
}

func generateCandidates(rng *rand.Rand, now time.Time, jobs []domain.Job, count int) []domain.Candidate {
	candidates := make([]domain.Candidate, 0, count)
	for i := 0; i < count; i++ {
		first := firstNames[rng.Intn(len(firstNames))]
		last := lastNames[rng.Intn(len(lastNames))]
		phone := fmt.Sprintf("+1-555-%04d", rng.Intn(9000)+1000)

		candidates = append(candidates, domain.Candidate{
			ID:        strconv.Itoa(i + 1),
			Name:      first + " " + last,
			Email:     strings.ToLower(first) + "." + strings.ToLower(last) + "@email.com",
			Stage:     stageOrder[rng.Intn(len(stageOrder))],
			JobID:     jobs[rng.Intn(len(jobs))].ID,
			Phone:     &phone,
			CreatedAt: now.Add(-time.Duration(rng.Intn(60*24)) * time.Hour),
			UpdatedAt: now,
		})
	}
	return candidates
}

// generateAssessments attaches the demo questionnaire to the first 3 jobs
func generateAssessments(jobs []domain.Job, now time.Time) []domain.Assessment {
	assessments := make([]domain.Assessment, 0, 3)
	for _, job := range jobs[:3] {
		sectionOneDesc := "Evaluate technical competencies"
		minLen100, maxLen1000, maxLen50 := 100, 1000, 50
		min1, max10 := 1.0, 10.0

		assessments = append(assessments, domain.Assessment{
			ID:          "assessment-" + job.ID,
			JobID:       job.ID,
			Title:       job.Title + " Assessment",
			Description: fmt.Sprintf("Technical assessment for %s position", job.Title),
			Sections: []domain.AssessmentSection{
				{
					ID:          "section-1-" + job.ID,
					Title:       "Technical Skills",
					Description: &sectionOneDesc,
					Questions: []domain.AssessmentQuestion{
						{
							ID:       "q1-" + job.ID,
							Type:     domain.QuestionSingleChoice,
							Question: "How many years of experience do you have?",
							Required: true,
							Options:  []string{"0-1 years", "2-3 years", "4-5 years", "6+ years"},
						},
						{
							ID:       "q2-" + job.ID,
							Type:     domain.QuestionMultiChoice,
							Question: "Which technologies are you proficient in?",
							Required: true,
							Options:  []string{"JavaScript", "TypeScript", "React", "Node.js", "Python", "Java"},
						},
						{
							ID:         "q3-" + job.ID,
							Type:       domain.QuestionLongText,
							Question:   "Describe a challenging project you worked on.",
							Required:   true,
							Validation: &domain.QuestionValidation{MinLength: &minLen100, MaxLength: &maxLen1000},
						},
					},
				},
				{
					ID:    "section-2-" + job.ID,
					Title: "Problem Solving",
					Questions: []domain.AssessmentQuestion{
						{
							ID:         "q4-" + job.ID,
							Type:       domain.QuestionShortText,
							Question:   "What is your preferred programming language?",
							Required:   false,
							Validation: &domain.QuestionValidation{MaxLength: &maxLen50},
						},
						{
							ID:         "q5-" + job.ID,
							Type:       domain.QuestionNumeric,
							Question:   "Rate your problem-solving skills (1-10)",
							Required:   true,
							Validation: &domain.QuestionValidation{Min: &min1, Max: &max10},
						},
						{
							ID:       "q6-" + job.ID,
							Type:     domain.QuestionSingleChoice,
							Question: "Are you available for remote work?",
							Required: true,
							Options:  []string{"Yes", "No", "Hybrid preferred"},
						},
						{
							ID:       "q7-" + job.ID,
							Type:     domain.QuestionShortText,
							Question: "If yes, what is your preferred remote work setup?",
							Required: false,
							ConditionalLogic: &domain.ConditionalLogic{
								DependsOn: "q6-" + job.ID,
								Condition: domain.ConditionEquals,
								Value:     "Yes",
							},
						},
					},
				},
			},
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
	return assessments
}

// generateTimeline walks each candidate from "applied" to its current stage
// and records an entry per hop, plus the occasional standalone note.
func generateTimeline(rng *rand.Rand, candidates []domain.Candidate) []domain.TimelineEntry {
	var entries []domain.TimelineEntry
	for _, candidate := range candidates {
		applied := domain.StageApplied
		entries = append(entries, domain.TimelineEntry{
			ID:          candidate.ID + "-initial",
			CandidateID: candidate.ID,
			Action:      domain.ActionStageChange,
			ToStage:     &applied,
			Timestamp:   candidate.CreatedAt,
			Notes:       "Candidate applied for the position",
		})

		current := stageIndex(candidate.Stage)
		for i := 1; i <= current; i++ {
			from, to := stageOrder[i-1], stageOrder[i]
			offset := time.Duration(i)*24*time.Hour + time.Duration(rng.Intn(7*24))*time.Hour
			entries = append(entries, domain.TimelineEntry{
				ID:          fmt.Sprintf("%s-%d", candidate.ID, i),
				CandidateID: candidate.ID,
				Action:      domain.ActionStageChange,
				FromStage:   &from,
				ToStage:     &to,
				Timestamp:   candidate.CreatedAt.Add(offset),
				Notes:       fmt.Sprintf("Moved to %s stage", to),
			})
		}

		if rng.Float64() > 0.5 {
			entries = append(entries, domain.TimelineEntry{
				ID:          candidate.ID + "-note",
				CandidateID: candidate.ID,
				Action:      domain.ActionNoteAdded,
				Timestamp:   candidate.CreatedAt.Add(time.Duration(rng.Intn(30*24)) * time.Hour),
				Notes:       noteTexts[rng.Intn(len(noteTexts))],
			})
		}
	}
	return entries
}

func stageIndex(stage string) int {
	for i, s := range stageOrder {
		if s == stage {
			return i
		}
	}
	return 0
}

// Slugify turns a title into its URL slug
func Slugify(title string) string {
	return strings.ToLower(strings.Join(strings.Fields(title), "-"))
}
