package skillset_test

import (
	"testing"

	"github.com/okian/berth/internal/domain/skillset"
	. "github.com/smartystreets/goconvey/convey"
)

func TestJaccard(t *testing.T) {
	Convey("Given two skill lists", t, func() {
		Convey("When both lists are empty", func() {
			Convey("Then similarity is zero", func() {
				So(skillset.Jaccard(nil, nil), ShouldEqual, 0.0)
				So(skillset.Jaccard([]string{}, []string{}), ShouldEqual, 0.0)
			})
		})

		Convey("When one list is empty", func() {
			Convey("Then similarity is zero", func() {
				So(skillset.Jaccard([]string{"Python"}, nil), ShouldEqual, 0.0)
				So(skillset.Jaccard(nil, []string{"Python"}), ShouldEqual, 0.0)
			})
		})

		Convey("When the lists are identical up to casing", func() {
			a := []string{"Python", "Machine Learning"}
			b := []string{"python", "MACHINE LEARNING"}

			Convey("Then similarity is exactly one", func() {
				So(skillset.Jaccard(a, b), ShouldEqual, 1.0)
			})
		})

		Convey("When the lists are disjoint", func() {
			a := []string{"Python", "SQL"}
			b := []string{"Marketing", "Design"}

			Convey("Then similarity is zero", func() {
				So(skillset.Jaccard(a, b), ShouldEqual, 0.0)
			})
		})

		Convey("When the lists partially overlap", func() {
			a := []string{"Python", "Machine Learning", "Data Analysis"}
			b := []string{"Python", "Machine Learning"}

			Convey("Then similarity is intersection over union", func() {
				So(skillset.Jaccard(a, b), ShouldAlmostEqual, 2.0/3.0, 1e-12)
			})
		})

		Convey("When one list carries duplicate entries", func() {
			a := []string{"Python", "python", "Python"}
			b := []string{"Python", "SQL"}

			Convey("Then duplicates collapse before counting", func() {
				So(skillset.Jaccard(a, b), ShouldAlmostEqual, 0.5, 1e-12)
			})
		})

		Convey("When arguments are swapped", func() {
			a := []string{"Go", "SQL", "React"}
			b := []string{"SQL", "Rust"}

			Convey("Then the result is symmetric", func() {
				So(skillset.Jaccard(a, b), ShouldEqual, skillset.Jaccard(b, a))
			})
		})
	})
}
