package jsonval

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Student struct {
	Name    string `json:"name"`
	Age     int
	Secret  string `json:"-"`
	Nick    *string
	hidden  string
	Courses []string `json:"courses"`
}

func TestFromStructs(t *testing.T) {
	nick := "al"
	list, err := FromStructs([]*Student{
		{Name: "Ann", Age: 20, Secret: "s", hidden: "h", Courses: []string{"math"}},
		nil,
		{Name: "Al", Nick: &nick},
	})
	require.NoError(t, err)
	require.Equal(t, 2, list.Len())

	first := list.At(0).(*Record)
	assert.Equal(t, []string{"student.name", "student.Age", "student.courses"}, first.Keys())
	assert.Equal(t, `{"student.name":"Ann","student.Age":20,"student.courses":["math"]}`, Stringify(first))

	second := list.At(1).(*Record)
	got, _ := second.Get(PrefixKey("student", "Nick"))
	assert.Equal(t, "al", got)
}

func TestFromStructs_EdgeCases(t *testing.T) {
	list, err := FromStructs(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, list.Len())

	_, err = FromStructs("not a slice")
	require.Error(t, err)

	_, err = FromStructs([]int{1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected a struct")
}

func TestFromStructs_Map(t *testing.T) {
	type Bag struct {
		Tags map[string]int `json:"tags"`
	}
	list, err := FromStructs([]Bag{{Tags: map[string]int{"b": 2, "a": 1}}})
	require.NoError(t, err)
	if diff := cmp.Diff(`{"bag.tags":{"a":1,"b":2}}`, Stringify(list.At(0))); diff != "" {
		t.Errorf("unexpected record (-want +got):\n%s", diff)
	}
}
