package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-lms-offline/internal/app"
	"github.com/MKhiriev/go-lms-offline/internal/workers"
	"github.com/MKhiriev/go-lms-offline/models"
)

var errUnknownRef = fmt.Errorf("%w: no item with this ref_id", app.ErrNotFound)

func newLoginCmd(rt *state) *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Check the credentials and store the profile on the device",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, err := rt.signIn(cmd)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "signed in as %s (%s mode)\n", user.Login, rt.app.Manager.Mode())
			return nil
		},
	}
}

func newProfileCmd(rt *state) *cobra.Command {
	return &cobra.Command{
		Use:   "profile",
		Short: "Show the profile of the user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, err := rt.signIn(cmd)
			if err != nil {
				return err
			}
			printProfile(cmd.OutOrStdout(), user)
			return nil
		},
	}
}

func newCoursesCmd(rt *state) *cobra.Command {
	return &cobra.Command{
		Use:   "courses",
		Short: "List the courses of the user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := rt.signIn(cmd); err != nil {
				return err
			}

			courses, err := rt.app.Manager.Courses(cmd.Context())
			if err != nil {
				return rt.fail(cmd, err)
			}
			printCourses(cmd.OutOrStdout(), courses)
			return nil
		},
	}
}

func newModulesCmd(rt *state) *cobra.Command {
	return &cobra.Command{
		Use:   "modules <course-ref>",
		Short: "List the learning modules of a course",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := rt.signIn(cmd); err != nil {
				return err
			}

			course, err := rt.course(cmd, args[0])
			if err != nil {
				return rt.fail(cmd, err)
			}

			modules, err := rt.app.Manager.Modules(cmd.Context(), course)
			if err != nil {
				return rt.fail(cmd, err)
			}
			printModules(cmd.OutOrStdout(), modules)
			return nil
		},
	}
}

func newDownloadCmd(rt *state) *cobra.Command {
	return &cobra.Command{
		Use:   "download <course-ref> <module-ref>",
		Short: "Download a learning module for offline reading",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := rt.signIn(cmd); err != nil {
				return err
			}

			module, err := rt.module(cmd, args[0], args[1])
			if err != nil {
				return rt.fail(cmd, err)
			}

			stored, err := rt.app.Manager.Download(cmd.Context(), module)
			if err != nil {
				return rt.fail(cmd, err)
			}

			pages := 0
			for _, chapter := range stored.Chapters {
				pages += len(chapter.Pages)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "downloaded %q: %d chapters, %d pages\n", stored.Title, len(stored.Chapters), pages)
			return nil
		},
	}
}

func newDesktopCmd(rt *state) *cobra.Command {
	desktopCmd := &cobra.Command{
		Use:   "desktop",
		Short: "List the modules pinned to the desktop",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := rt.signIn(cmd); err != nil {
				return err
			}

			modules, err := rt.app.Manager.Desktop(cmd.Context())
			if err != nil {
				return rt.fail(cmd, err)
			}
			printModules(cmd.OutOrStdout(), modules)
			return nil
		},
	}

	pin := func(onDesktop bool) func(cmd *cobra.Command, args []string) error {
		return func(cmd *cobra.Command, args []string) error {
			if _, err := rt.signIn(cmd); err != nil {
				return err
			}

			module, err := rt.module(cmd, args[0], args[1])
			if err != nil {
				return rt.fail(cmd, err)
			}

			if onDesktop {
				err = rt.app.Manager.PinToDesktop(cmd.Context(), module)
			} else {
				err = rt.app.Manager.UnpinFromDesktop(cmd.Context(), module)
			}
			if err != nil {
				return rt.fail(cmd, err)
			}
			return nil
		}
	}

	desktopCmd.AddCommand(
		&cobra.Command{
			Use:   "pin <course-ref> <module-ref>",
			Short: "Pin a downloaded module to the desktop",
			Args:  cobra.ExactArgs(2),
			RunE:  pin(true),
		},
		&cobra.Command{
			Use:   "unpin <course-ref> <module-ref>",
			Short: "Remove a module from the desktop",
			Args:  cobra.ExactArgs(2),
			RunE:  pin(false),
		},
	)

	return desktopCmd
}

func newCleanCacheCmd(rt *state) *cobra.Command {
	var every time.Duration

	cmd := &cobra.Command{
		Use:   "clean-cache",
		Short: "Remove leftover downloads from the temporary directory",
		Long: `Remove leftover downloads from the temporary directory.

With --every the cleanup is repeated at the given interval until the
process is interrupted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cleaner := rt.app.CacheCleaner()
			if every <= 0 {
				if err := cleaner.Run(cmd.Context()); err != nil {
					return rt.fail(cmd, err)
				}
				return nil
			}

			job := workers.NewJob(cleaner, rt.logger)
			job.Start(cmd.Context(), every)
			<-cmd.Context().Done()
			job.Stop()
			return nil
		},
	}
	cmd.Flags().DurationVar(&every, "every", 0, "Repeat the cleanup at this interval")

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print build information",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{"standalone": "true"},
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprint(cmd.OutOrStdout(), models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
		},
	}
}

// course finds the course with the given ref_id among the user's courses.
func (rt *state) course(cmd *cobra.Command, rawRef string) (models.Course, error) {
	ref, err := parseRef(rawRef)
	if err != nil {
		return models.Course{}, err
	}

	courses, err := rt.app.Manager.Courses(cmd.Context())
	if err != nil {
		return models.Course{}, err
	}
	for _, course := range courses {
		if course.RefID == ref {
			return course, nil
		}
	}
	return models.Course{}, fmt.Errorf("%w: course %d", errUnknownRef, ref)
}

// module finds the module with the given ref_id in a course.
func (rt *state) module(cmd *cobra.Command, rawCourseRef, rawModuleRef string) (models.LearningModule, error) {
	ref, err := parseRef(rawModuleRef)
	if err != nil {
		return models.LearningModule{}, err
	}

	course, err := rt.course(cmd, rawCourseRef)
	if err != nil {
		return models.LearningModule{}, err
	}

	modules, err := rt.app.Manager.Modules(cmd.Context(), course)
	if err != nil {
		return models.LearningModule{}, err
	}
	for _, module := range modules {
		if module.RefID == ref {
			return module, nil
		}
	}
	return models.LearningModule{}, fmt.Errorf("%w: module %d", errUnknownRef, ref)
}

func parseRef(raw string) (int64, error) {
	ref, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || ref <= 0 {
		return 0, fmt.Errorf("%w: %q is not a ref_id", errUnknownRef, raw)
	}
	return ref, nil
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// renderTable writes rows as a bordered table. A nil headers slice renders
// a table without a header row.
func renderTable(w io.Writer, headers []string, rows [][]string) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Rows(rows...)
	if headers != nil {
		t = t.Headers(headers...)
	}
	fmt.Fprintln(w, t.Render())
}

func printProfile(w io.Writer, user models.User) {
	rows := [][]string{
		{"login", user.Login},
		{"name", strings.TrimSpace(user.Firstname + " " + user.Lastname)},
	}
	if user.Avatar != "" {
		rows = append(rows, []string{"avatar", user.Avatar})
	}
	renderTable(w, nil, rows)
}

func printCourses(w io.Writer, courses []models.Course) {
	if len(courses) == 0 {
		fmt.Fprintln(w, "no courses")
		return
	}

	rows := make([][]string, 0, len(courses))
	for _, course := range courses {
		rows = append(rows, []string{strconv.FormatInt(course.RefID, 10), course.Status.Primary().String(), course.Title})
	}
	renderTable(w, []string{"REF", "STATUS", "TITLE"}, rows)
}

func printModules(w io.Writer, modules []models.LearningModule) {
	if len(modules) == 0 {
		fmt.Fprintln(w, "no learning modules")
		return
	}

	rows := make([][]string, 0, len(modules))
	for _, module := range modules {
		desktop := ""
		if module.OnDesktop {
			desktop = "pinned"
		}
		rows = append(rows, []string{
			strconv.FormatInt(module.RefID, 10),
			module.Status.Primary().String(),
			desktop,
			strconv.Itoa(len(module.Chapters)),
			module.Title,
		})
	}
	renderTable(w, []string{"REF", "STATUS", "DESKTOP", "CHAPTERS", "TITLE"}, rows)
}
