package query

import (
	"errors"
	"strings"
	"testing"
)

func TestPlanRendersJoinsAndPredicates(t *testing.T) {
	plan := From("post p").
		LeftJoin("post_description pd ON p.id_post = pd.id_post AND pd.id_language = ?", 1).
		Columns("p.id_post", "pd.title").
		Where("p.active", "Y").
		OrderBy("p.publishdate DESC")

	stmt, args, err := plan.SQL()
	if err != nil {
		t.Fatalf("SQL: %v", err)
	}

	want := "SELECT p.id_post, pd.title FROM post p " +
		"LEFT JOIN post_description pd ON p.id_post = pd.id_post AND pd.id_language = $1 " +
		"WHERE p.active = $2 ORDER BY p.publishdate DESC"
	if stmt != want {
		t.Errorf("statement mismatch:\n got: %s\nwant: %s", stmt, want)
	}
	if len(args) != 2 || args[0] != 1 || args[1] != "Y" {
		t.Errorf("args: got %v, want [1 Y]", args)
	}
}

func TestPlanLikeBindsCallerPattern(t *testing.T) {
	stmt, args, err := From("post_description pd").
		Columns("pd.title").
		WhereLike("pd.title", "%indonesia%").
		SQL()
	if err != nil {
		t.Fatalf("SQL: %v", err)
	}

	if !strings.Contains(stmt, "pd.title LIKE $1") {
		t.Errorf("expected LIKE placeholder, got: %s", stmt)
	}
	if len(args) != 1 || args[0] != "%indonesia%" {
		t.Errorf("args: got %v, want the raw pattern", args)
	}
}

func TestPlanLimitOffset(t *testing.T) {
	stmt, _, err := From("post p").Columns("p.id_post").Limit(10).Offset(20).SQL()
	if err != nil {
		t.Fatalf("SQL: %v", err)
	}
	if !strings.Contains(stmt, "LIMIT 10") || !strings.Contains(stmt, "OFFSET 20") {
		t.Errorf("expected LIMIT 10 OFFSET 20, got: %s", stmt)
	}
}

func TestPlanNegativeRange(t *testing.T) {
	cases := []struct {
		name string
		plan Plan
	}{
		{"negative limit", From("post p").Columns("p.id_post").Limit(-1)},
		{"negative offset", From("post p").Columns("p.id_post").Offset(-10)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, _, err := tc.plan.SQL(); !errors.Is(err, ErrNegativeRange) {
				t.Errorf("got %v, want ErrNegativeRange", err)
			}
		})
	}
}

func TestPlanIsImmutable(t *testing.T) {
	base := From("category c").
		Columns("c.id_category").
		Where("c.active", "Y")

	withFilter := base.Where("c.id_category", 7)

	baseStmt, _, err := base.SQL()
	if err != nil {
		t.Fatalf("SQL: %v", err)
	}
	filteredStmt, _, err := withFilter.SQL()
	if err != nil {
		t.Fatalf("SQL: %v", err)
	}

	if strings.Contains(baseStmt, "id_category =") {
		t.Errorf("extending a plan mutated its base: %s", baseStmt)
	}
	if !strings.Contains(filteredStmt, "c.id_category = $2") {
		t.Errorf("extended plan missing filter: %s", filteredStmt)
	}
}
