package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/techwell/techwell/internal/progress"
	"github.com/techwell/techwell/internal/store"
)

var coursesCmd = &cobra.Command{
	Use:   "courses",
	Short: "Browse courses and track lesson progress",
}

var coursesEnrollCmd = &cobra.Command{
	Use:   "enroll <course-id>",
	Short: "Enroll in a course",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, _ := cmd.Flags().GetString("user")
		courseID := args[0]

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := context.Background()
		course, err := s.Courses().CourseTree(ctx, courseID)
		if err != nil {
			return fmt.Errorf("load course: %w", err)
		}
		if course == nil {
			return progress.ErrCourseNotFound
		}

		existing, err := s.Enrollments().Find(ctx, userID, courseID)
		if err != nil {
			return fmt.Errorf("check enrollment: %w", err)
		}
		if existing != nil {
			fmt.Printf("Already enrolled in %q (%s).\n", course.Title, existing.Status)
			return nil
		}

		e := &store.Enrollment{UserID: userID, CourseID: courseID, Status: store.EnrollmentActive}
		if err := s.Enrollments().Create(ctx, e); err != nil {
			return fmt.Errorf("create enrollment: %w", err)
		}
		fmt.Printf("Enrolled in %q.\n", course.Title)
		return nil
	},
}

var coursesViewCmd = &cobra.Command{
	Use:   "view <course-id>",
	Short: "Show a course with your progress and unlock state",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, _ := cmd.Flags().GetString("user")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		svc := progress.NewService(s)
		view, err := svc.GetCourseView(context.Background(), userID, args[0])
		if err != nil {
			return err
		}

		fmt.Println(view.Title)
		if view.Description != "" {
			fmt.Println(view.Description)
		}
		fmt.Println(strings.Repeat("─", 64))

		for _, m := range view.Modules {
			fmt.Printf("%d. %s\n", m.OrderIndex, m.Title)
			for _, l := range m.Lessons {
				mark := "[ ]"
				if l.IsCompleted {
					mark = "[x]"
				}
				var notes []string
				if l.IsLocked {
					notes = append(notes, "locked")
				}
				if l.IsPreview {
					notes = append(notes, "preview")
				}
				suffix := ""
				if len(notes) > 0 {
					suffix = " (" + strings.Join(notes, ", ") + ")"
				}
				fmt.Printf("   %s %s%s\n", mark, l.Title, suffix)
			}
		}

		fmt.Println(strings.Repeat("─", 64))
		fmt.Printf("Progress: %d/%d lessons (%d%%)\n", view.Completed, view.Total, view.Percent)
		return nil
	},
}

var coursesCompleteCmd = &cobra.Command{
	Use:   "complete <lesson-id>",
	Short: "Mark a lesson complete",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, _ := cmd.Flags().GetString("user")
		timeSpent, _ := cmd.Flags().GetInt("time")

		in := progress.CompletionInput{TimeSpentSec: timeSpent}
		if cmd.Flags().Changed("score") {
			score, _ := cmd.Flags().GetFloat64("score")
			in.Score = &score
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		svc := progress.NewService(s)
		res, err := svc.RecordCompletion(context.Background(), userID, args[0], in)
		if err != nil {
			if errors.Is(err, progress.ErrNotEnrolled) {
				return fmt.Errorf("%w; run `techwell courses enroll` first", err)
			}
			return err
		}

		fmt.Printf("Lesson recorded. Course progress: %d%%\n", res.Progress)
		if res.CourseCompleted {
			fmt.Println("Course completed — congratulations!")
		}
		return nil
	},
}

func init() {
	coursesCmd.PersistentFlags().StringP("user", "u", "local", "User ID")

	coursesCompleteCmd.Flags().Int("time", 0, "Seconds spent on the lesson (added to the stored total)")
	coursesCompleteCmd.Flags().Float64("score", 0, "Quiz score for the lesson (0-100)")

	coursesCmd.AddCommand(coursesEnrollCmd)
	coursesCmd.AddCommand(coursesViewCmd)
	coursesCmd.AddCommand(coursesCompleteCmd)
}
