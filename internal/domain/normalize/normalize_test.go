package normalize_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/undokai/rostercheck/internal/domain/normalize"
)

func TestNormalize(t *testing.T) {
	Convey("Given free-text queries", t, func() {
		Convey("When the query uses ideographic spaces and doubled spaces", func() {
			So(normalize.Normalize("　山田　　太郎"), ShouldEqual, "山田 太郎")
		})

		Convey("When the query uses full-width forms", func() {
			So(normalize.Normalize("ｙａｍａｄａ"), ShouldEqual, "yamada")
			So(normalize.Normalize("１２３"), ShouldEqual, "123")
		})

		Convey("When the query carries zero-width characters", func() {
			So(normalize.Normalize("山\u200b田"), ShouldEqual, "山田")
			So(normalize.Normalize("\ufeff山田"), ShouldEqual, "山田")
			So(normalize.Normalize("山\u200c\u200d田"), ShouldEqual, "山田")
		})

		Convey("When the query has leading and trailing whitespace", func() {
			So(normalize.Normalize("  山田  "), ShouldEqual, "山田")
			So(normalize.Normalize("\t山田\n太郎\t"), ShouldEqual, "山田 太郎")
		})

		Convey("When the query is empty or whitespace only", func() {
			So(normalize.Normalize(""), ShouldEqual, "")
			So(normalize.Normalize("   "), ShouldEqual, "")
			So(normalize.Normalize("　　"), ShouldEqual, "")
		})
	})
}

func TestTokenize(t *testing.T) {
	Convey("Given queries to tokenize", t, func() {
		Convey("When the query holds several names", func() {
			So(normalize.Tokenize("山中 井戸"), ShouldResemble, []string{"山中", "井戸"})
		})

		Convey("When the query mixes space widths", func() {
			So(normalize.Tokenize("山中　井戸 太郎"), ShouldResemble, []string{"山中", "井戸", "太郎"})
		})

		Convey("When the query is empty", func() {
			So(normalize.Tokenize(""), ShouldBeEmpty)
			So(normalize.Tokenize("　 　"), ShouldBeEmpty)
		})
	})
}
