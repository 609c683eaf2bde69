package goquery_test

import (
	"testing"

	"github.com/fwojciec/jdex"
	"github.com/fwojciec/jdex/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClassPage(t *testing.T) {
	t.Parallel()

	listLink := goquery.ClassLink{
		URL:     "https://docs.example.com/api/java/util/List.html",
		Name:    "List",
		Package: "java.util",
		Kind:    jdex.KindInterface,
	}

	t.Run("parses object header", func(t *testing.T) {
		t.Parallel()

		obj, err := goquery.ParseClassPage(listHTML, listLink)

		require.NoError(t, err)
		assert.Equal(t, jdex.KindInterface, obj.Kind)
		assert.Equal(t, "List", obj.Name)
		assert.Equal(t, "java.util", obj.Package)
		assert.Equal(t, listLink.URL, obj.URL)
		require.NotNil(t, obj.Description)
		assert.Equal(t, "An ordered collection, also known as a sequence.", obj.Description.Text)
		assert.Contains(t, obj.Description.HTML, "<i>sequence</i>")
		assert.Nil(t, obj.Deprecation)
	})

	t.Run("parses fields", func(t *testing.T) {
		t.Parallel()

		obj, err := goquery.ParseClassPage(listHTML, listLink)
		require.NoError(t, err)

		fields := obj.MembersOfKind(jdex.KindField)
		require.Len(t, fields, 1)
		assert.Equal(t, "EMPTY", fields[0].Name)
		assert.Equal(t, "int", fields[0].Type)
		assert.True(t, fields[0].Static)
		assert.Equal(t, listLink.URL+"#EMPTY", fields[0].URL)
		assert.Equal(t, "Marker.", fields[0].Description.Text)
	})

	t.Run("parses method signature and notes", func(t *testing.T) {
		t.Parallel()

		obj, err := goquery.ParseClassPage(listHTML, listLink)
		require.NoError(t, err)

		methods := obj.MembersOfKind(jdex.KindMethod)
		require.Len(t, methods, 2)

		add := methods[0]
		assert.Equal(t, "add", add.Name)
		assert.Equal(t, "E", add.Type)
		assert.False(t, add.Static)
		assert.Equal(t, []string{"@Nullable"}, add.Annotations)
		assert.Equal(t, "Inserts the element.", add.Description.Text)
		require.NotNil(t, add.Returns)
		assert.Equal(t, "the previous element", add.Returns.Text)

		require.Len(t, add.Parameters, 2)
		assert.Equal(t, "index", add.Parameters[0].Name)
		assert.Equal(t, "int", add.Parameters[0].Type)
		assert.Equal(t, "index at which to insert", add.Parameters[0].Description.Text)
		assert.Equal(t, "element", add.Parameters[1].Name)
		assert.Equal(t, "java.util.Map<K,V>", add.Parameters[1].Type)
		assert.Equal(t, []string{"@NonNull"}, add.Parameters[1].Annotations)
		assert.Equal(t, "element to insert", add.Parameters[1].Description.Text)

		size := methods[1]
		assert.Equal(t, "size", size.Name)
		assert.Empty(t, size.Parameters)
		assert.Nil(t, size.Returns)
	})

	t.Run("parses member deprecation", func(t *testing.T) {
		t.Parallel()

		obj, err := goquery.ParseClassPage(listHTML, listLink)
		require.NoError(t, err)

		add := obj.MembersOfKind(jdex.KindMethod)[0]
		require.NotNil(t, add.Deprecation)
		assert.True(t, add.Deprecation.ForRemoval)
		assert.Equal(t, "Use put instead.", add.Deprecation.Text)
	})

	t.Run("parses annotation retention, targets and elements", func(t *testing.T) {
		t.Parallel()

		link := goquery.ClassLink{URL: "https://x/Retention.html", Name: "Retention", Kind: jdex.KindAnnotation}

		obj, err := goquery.ParseClassPage(retentionHTML, link)

		require.NoError(t, err)
		assert.Equal(t, "RUNTIME", obj.Retention)
		assert.Equal(t, []string{"ANNOTATION_TYPE"}, obj.Targets)
		elements := obj.MembersOfKind(jdex.KindAnnotationElement)
		require.Len(t, elements, 1)
		assert.Equal(t, "value", elements[0].Name)
		assert.Equal(t, "RetentionPolicy", elements[0].Type)
	})

	t.Run("parses enum constants and methods", func(t *testing.T) {
		t.Parallel()

		link := goquery.ClassLink{URL: "https://x/RetentionPolicy.html", Name: "RetentionPolicy", Kind: jdex.KindEnum}

		obj, err := goquery.ParseClassPage(policyHTML, link)

		require.NoError(t, err)
		constants := obj.MembersOfKind(jdex.KindEnumConstant)
		require.Len(t, constants, 2)
		assert.Equal(t, "SOURCE", constants[0].Name)
		assert.Equal(t, "RUNTIME", constants[1].Name)
		methods := obj.MembersOfKind(jdex.KindMethod)
		require.Len(t, methods, 1)
		assert.Equal(t, "RetentionPolicy[]", methods[0].Type)
		assert.True(t, methods[0].Static)
	})

	t.Run("page without members", func(t *testing.T) {
		t.Parallel()

		link := goquery.ClassLink{URL: "https://x/ArrayList.html", Name: "ArrayList", Kind: jdex.KindClass}

		obj, err := goquery.ParseClassPage(plainClassHTML, link)

		require.NoError(t, err)
		assert.Empty(t, obj.Members)
		assert.Equal(t, "Resizable array.", obj.Description.Text)
	})

	t.Run("rejects pages without class description", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.ParseClassPage("<html><body>404</body></html>", listLink)

		assert.Equal(t, jdex.EINVALID, jdex.ErrorCode(err))
	})
}

func TestParseTargets(t *testing.T) {
	t.Parallel()

	html := `<section class="class-description"><div class="type-signature">@Target({ElementType.METHOD, ElementType.FIELD}) public @interface X</div></section>`
	obj, err := goquery.ParseClassPage(html, goquery.ClassLink{Name: "X", Kind: jdex.KindAnnotation})
	require.NoError(t, err)
	assert.Equal(t, []string{"METHOD", "FIELD"}, obj.Targets)
	assert.Empty(t, obj.Retention)

	html = `<section class="class-description"><div class="type-signature">@Target({}) public @interface Y</div></section>`
	obj, err = goquery.ParseClassPage(html, goquery.ClassLink{Name: "Y", Kind: jdex.KindAnnotation})
	require.NoError(t, err)
	assert.Equal(t, []string{"NONE"}, obj.Targets)
}
