package integration

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
)

func TestDatabase_StaffProfileCRUD(t *testing.T) {
	env := SetupTestEnvironment(t)
	SetupSchema(t, env.DB)
	CleanDatabase(t, env.DB)

	staffID := uuid.New().String()

	t.Run("Create", func(t *testing.T) {
		subjects, _ := json.Marshal([]string{"Mathematics", "Statistics"})
		_, err := env.DB.Exec(`
			INSERT INTO staff_profiles (id, name, role, employee_id, department, subjects, email, phone, join_date)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			staffID, "Sarah Johnson", "Senior Teacher", "EMP-001", "Mathematics",
			subjects, "sarah.johnson@school.edu", "555-0123", "2020-08-15",
		)
		if err != nil {
			t.Fatalf("Failed to insert staff profile: %v", err)
		}
	})

	t.Run("Read", func(t *testing.T) {
		var name, department string
		err := env.DB.QueryRow(
			"SELECT name, department FROM staff_profiles WHERE id = $1", staffID,
		).Scan(&name, &department)
		if err != nil {
			t.Fatalf("Failed to read staff profile: %v", err)
		}
		if name != "Sarah Johnson" {
			t.Errorf("Expected name 'Sarah Johnson', got '%s'", name)
		}
		if department != "Mathematics" {
			t.Errorf("Expected department 'Mathematics', got '%s'", department)
		}
	})

	t.Run("UniqueEmail", func(t *testing.T) {
		_, err := env.DB.Exec(`
			INSERT INTO staff_profiles (id, name, email)
			VALUES ($1, $2, $3)`,
			uuid.New().String(), "Impostor", "sarah.johnson@school.edu",
		)
		if err == nil {
			t.Error("Expected unique violation on duplicate email")
		}
	})

	t.Run("Update", func(t *testing.T) {
		_, err := env.DB.Exec(
			"UPDATE staff_profiles SET department = $1 WHERE id = $2", "Science", staffID,
		)
		if err != nil {
			t.Fatalf("Failed to update staff profile: %v", err)
		}

		var department string
		env.DB.QueryRow("SELECT department FROM staff_profiles WHERE id = $1", staffID).Scan(&department)
		if department != "Science" {
			t.Errorf("Expected updated department 'Science', got '%s'", department)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		result, err := env.DB.Exec("DELETE FROM staff_profiles WHERE id = $1", staffID)
		if err != nil {
			t.Fatalf("Failed to delete staff profile: %v", err)
		}
		affected, _ := result.RowsAffected()
		if affected != 1 {
			t.Errorf("Expected 1 row deleted, got %d", affected)
		}
	})
}

func TestDatabase_ScheduleQueries(t *testing.T) {
	env := SetupTestEnvironment(t)
	SetupSchema(t, env.DB)
	CleanDatabase(t, env.DB)

	staffID := uuid.New().String()

	slots := []struct {
		time string
		day  string
	}{
		{"14:00", "Monday"},
		{"09:00", "Monday"},
		{"11:00", "Monday"},
		{"09:00", "Tuesday"},
	}
	for _, slot := range slots {
		_, err := env.DB.Exec(`
			INSERT INTO schedules (id, time, subject, class_name, room, day, status, staff_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			uuid.New().String(), slot.time, "Mathematics", "Grade 12A", "201", slot.day, "scheduled", staffID,
		)
		if err != nil {
			t.Fatalf("Failed to insert schedule: %v", err)
		}
	}

	t.Run("ByDayOrderedByTime", func(t *testing.T) {
		rows, err := env.DB.Query(`
			SELECT time FROM schedules
			WHERE staff_id = $1 AND day = $2
			ORDER BY time`, staffID, "Monday")
		if err != nil {
			t.Fatalf("Failed to query schedules: %v", err)
		}
		defer rows.Close()

		var times []string
		for rows.Next() {
			var slot string
			if err := rows.Scan(&slot); err != nil {
				t.Fatalf("Failed to scan schedule: %v", err)
			}
			times = append(times, slot)
		}

		if len(times) != 3 {
			t.Fatalf("Expected 3 Monday slots, got %d", len(times))
		}
		if times[0] != "09:00" || times[1] != "11:00" || times[2] != "14:00" {
			t.Errorf("Expected time-ordered slots, got %v", times)
		}
	})

	t.Run("CountByStatus", func(t *testing.T) {
		var count int
		err := env.DB.QueryRow(`
			SELECT COUNT(*) FROM schedules
			WHERE staff_id = $1 AND status = $2`, staffID, "scheduled").Scan(&count)
		if err != nil {
			t.Fatalf("Failed to count schedules: %v", err)
		}
		if count != 4 {
			t.Errorf("Expected 4 scheduled slots, got %d", count)
		}
	})
}

func TestDatabase_AttendanceRecords(t *testing.T) {
	env := SetupTestEnvironment(t)
	SetupSchema(t, env.DB)
	CleanDatabase(t, env.DB)

	staffID := uuid.New().String()
	recordID := uuid.New().String()

	students := []map[string]string{
		{"id": uuid.New().String(), "name": "John Smith", "status": "present"},
		{"id": uuid.New().String(), "name": "Jane Doe", "status": "absent"},
		{"id": uuid.New().String(), "name": "Alex Johnson", "status": "late"},
	}
	studentsJSON, _ := json.Marshal(students)

	t.Run("CreateWithStudents", func(t *testing.T) {
		_, err := env.DB.Exec(`
			INSERT INTO attendance_records (id, class_name, date, total_students, present, absent, late, students, staff_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			recordID, "Grade 12A", "2025-01-15", 3, 1, 1, 1, studentsJSON, staffID,
		)
		if err != nil {
			t.Fatalf("Failed to insert attendance record: %v", err)
		}
	})

	t.Run("ReadStudentsJSON", func(t *testing.T) {
		var raw []byte
		err := env.DB.QueryRow(
			"SELECT students FROM attendance_records WHERE id = $1", recordID,
		).Scan(&raw)
		if err != nil {
			t.Fatalf("Failed to read attendance record: %v", err)
		}

		var decoded []map[string]string
		if err := json.Unmarshal(raw, &decoded); err != nil {
			t.Fatalf("Failed to decode students JSON: %v", err)
		}
		if len(decoded) != 3 {
			t.Errorf("Expected 3 students, got %d", len(decoded))
		}
		if decoded[0]["name"] != "John Smith" {
			t.Errorf("Expected first student 'John Smith', got '%s'", decoded[0]["name"])
		}
	})

	t.Run("AggregateByStaff", func(t *testing.T) {
		var totalPresent, totalTracked int
		err := env.DB.QueryRow(`
			SELECT COALESCE(SUM(present), 0), COALESCE(SUM(total_students), 0)
			FROM attendance_records WHERE staff_id = $1`, staffID,
		).Scan(&totalPresent, &totalTracked)
		if err != nil {
			t.Fatalf("Failed to aggregate attendance: %v", err)
		}
		if totalPresent != 1 || totalTracked != 3 {
			t.Errorf("Expected 1/3 present, got %d/%d", totalPresent, totalTracked)
		}
	})
}

func TestDatabase_UpcomingTasks(t *testing.T) {
	env := SetupTestEnvironment(t)
	SetupSchema(t, env.DB)
	CleanDatabase(t, env.DB)

	staffID := uuid.New().String()

	tasks := []struct {
		task      string
		dueDate   string
		completed bool
	}{
		{"Grade midterm exams", "2025-01-20", false},
		{"Prepare lesson plan", "2025-01-16", false},
		{"Submit attendance report", "2025-01-10", true},
		{"Parent-teacher meetings", "2025-01-25", false},
		{"Order lab supplies", "2025-01-18", false},
		{"Update gradebook", "2025-01-17", false},
	}
	for _, task := range tasks {
		_, err := env.DB.Exec(`
			INSERT INTO tasks (id, task, priority, due_date, staff_id, completed)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			uuid.New().String(), task.task, "medium", task.dueDate, staffID, task.completed,
		)
		if err != nil {
			t.Fatalf("Failed to insert task: %v", err)
		}
	}

	t.Run("UpcomingLimitedAndOrdered", func(t *testing.T) {
		rows, err := env.DB.Query(`
			SELECT task FROM tasks
			WHERE staff_id = $1 AND completed = FALSE AND due_date >= $2
			ORDER BY due_date
			LIMIT 4`, staffID, "2025-01-15")
		if err != nil {
			t.Fatalf("Failed to query upcoming tasks: %v", err)
		}
		defer rows.Close()

		var names []string
		for rows.Next() {
			var name string
			rows.Scan(&name)
			names = append(names, name)
		}

		if len(names) != 4 {
			t.Fatalf("Expected 4 upcoming tasks, got %d", len(names))
		}
		if names[0] != "Prepare lesson plan" {
			t.Errorf("Expected earliest due task first, got '%s'", names[0])
		}
	})

	t.Run("CompletedCount", func(t *testing.T) {
		var count int
		err := env.DB.QueryRow(`
			SELECT COUNT(*) FROM tasks
			WHERE staff_id = $1 AND completed = TRUE`, staffID).Scan(&count)
		if err != nil {
			t.Fatalf("Failed to count completed tasks: %v", err)
		}
		if count != 1 {
			t.Errorf("Expected 1 completed task, got %d", count)
		}
	})
}

func TestDatabase_TemplatesAndSubmissions(t *testing.T) {
	env := SetupTestEnvironment(t)
	SetupSchema(t, env.DB)
	CleanDatabase(t, env.DB)

	staffID := uuid.New().String()

	fields, _ := json.Marshal([]map[string]interface{}{
		{"name": "subject", "label": "Subject", "type": "text", "required": true},
		{"name": "topic", "label": "Topic", "type": "text", "required": true},
	})
	_, err := env.DB.Exec(`
		INSERT INTO templates (id, name, category, fields)
		VALUES ($1, $2, $3, $4)`,
		"template_1", "Lesson Plan Template", "lesson_plan", fields,
	)
	if err != nil {
		t.Fatalf("Failed to insert template: %v", err)
	}

	t.Run("SubmissionReferencesTemplate", func(t *testing.T) {
		data, _ := json.Marshal(map[string]string{
			"subject": "Advanced Calculus",
			"topic":   "Derivatives and Chain Rule",
		})
		_, err := env.DB.Exec(`
			INSERT INTO form_submissions (id, template_name, template_id, data, status, staff_id)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			uuid.New().String(), "Lesson Plan Template", "template_1", data, "submitted", staffID,
		)
		if err != nil {
			t.Fatalf("Failed to insert submission: %v", err)
		}

		var subject string
		err = env.DB.QueryRow(`
			SELECT data->>'subject' FROM form_submissions
			WHERE staff_id = $1 AND template_id = $2`, staffID, "template_1",
		).Scan(&subject)
		if err != nil {
			t.Fatalf("Failed to read submission data: %v", err)
		}
		if subject != "Advanced Calculus" {
			t.Errorf("Expected subject 'Advanced Calculus', got '%s'", subject)
		}
	})

	t.Run("FilterByCategory", func(t *testing.T) {
		var count int
		err := env.DB.QueryRow(
			"SELECT COUNT(*) FROM templates WHERE category = $1", "lesson_plan",
		).Scan(&count)
		if err != nil {
			t.Fatalf("Failed to filter templates: %v", err)
		}
		if count != 1 {
			t.Errorf("Expected 1 lesson_plan template, got %d", count)
		}
	})
}
