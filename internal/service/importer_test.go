package service

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/coursedeck/internal/database"
	"github.com/jask/coursedeck/internal/database/repository"
)

type importFixture struct {
	svc   *ImportService
	maint *MaintenanceService
	ctx   context.Context
}

func setupImportTest(t *testing.T) importFixture {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)

	db, err := database.OpenMigrated(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return importFixture{
		svc: &ImportService{
			Departments: repository.NewDepartmentRepo(db),
			Semesters:   repository.NewSemesterRepo(db),
			Subjects:    repository.NewSubjectRepo(db),
		},
		maint: &MaintenanceService{DB: db},
		ctx:   ctx,
	}
}

func TestImportCSV_HappyPath(t *testing.T) {
	t.Parallel()
	f := setupImportTest(t)

	data := strings.Join([]string{
		"kind,id,name,parent,code",
		"department,1,CS,,CSE",
		"semester,s1,Fall,1",
		"subject,x1,Algo,s1",
		"subject,,Compilers,s1",
		"# comment lines are ignored",
		"subject,x9,Ghost,s9",
	}, "\n")

	res, err := f.svc.ImportCSV(f.ctx, strings.NewReader(data))
	require.NoError(t, err)
	require.Empty(t, res.Errors)
	require.Equal(t, 5, res.Imported)
	require.Zero(t, res.Skipped)

	depts, err := f.svc.Departments.List(f.ctx)
	require.NoError(t, err)
	require.Len(t, depts, 1)
	require.Equal(t, "CSE", depts[0].Code)

	subs, err := f.svc.Subjects.List(f.ctx)
	require.NoError(t, err)
	require.Len(t, subs, 3)
	require.Equal(t, database.SeedID("subject", "s1", "Compilers"), subs[1].ID)
	require.Equal(t, "s9", subs[2].SemesterID, "dangling parents are kept")

	// re-import updates in place
	res2, err := f.svc.ImportCSV(f.ctx, strings.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, 5, res2.Imported)
	subs, err = f.svc.Subjects.List(f.ctx)
	require.NoError(t, err)
	require.Len(t, subs, 3)
}

func TestImportCSV_CollectsRowErrors(t *testing.T) {
	t.Parallel()
	f := setupImportTest(t)

	data := strings.Join([]string{
		"department,1,CS,",
		"department,1,CS again,",
		"course,c1,Nope,1",
		"semester,s1",
		"subject,,,s1",
	}, "\n")

	res, err := f.svc.ImportCSV(f.ctx, strings.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, 1, res.Imported)
	require.Equal(t, 1, res.Skipped)
	require.Len(t, res.Errors, 3)
	require.Contains(t, res.Errors[0].Error(), `unknown kind "course"`)
	require.Contains(t, res.Errors[1].Error(), "line 4")
}

func TestImportCSV_ReportsFileLines(t *testing.T) {
	t.Parallel()
	f := setupImportTest(t)

	data := strings.Join([]string{
		"# catalog export",
		"# generated nightly",
		"kind,id,name,parent",
		"planet,p1,Mars,",
		"",
		"department,1,CS,",
		"department,2,\"EE",
	}, "\n")

	res, err := f.svc.ImportCSV(f.ctx, strings.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, 1, res.Imported, "a header after comments is still skipped")
	require.Len(t, res.Errors, 2)
	require.Contains(t, res.Errors[0].Error(), "line 4 planet")
	require.Contains(t, res.Errors[1].Error(), "line 7")

	depts, err := f.svc.Departments.List(f.ctx)
	require.NoError(t, err)
	require.Len(t, depts, 1)
	require.Equal(t, 6, depts[0].Position)
}

func TestMaintenanceReset(t *testing.T) {
	t.Parallel()
	f := setupImportTest(t)

	_, err := f.svc.ImportCSV(f.ctx, strings.NewReader("department,1,CS,\nsemester,s1,Fall,1\n"))
	require.NoError(t, err)
	require.NoError(t, f.maint.Reset(f.ctx))

	n, err := f.svc.Departments.Count(f.ctx)
	require.NoError(t, err)
	require.Zero(t, n)

	require.Error(t, (&MaintenanceService{}).Reset(f.ctx))
}
