package shaping_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/upcAutoLang/rezero-dynamic-summary/internal/errs"
	"github.com/upcAutoLang/rezero-dynamic-summary/internal/jsonval"
	"github.com/upcAutoLang/rezero-dynamic-summary/internal/render"
	"github.com/upcAutoLang/rezero-dynamic-summary/modules/shaping"
)

func newRelations(t *testing.T) *shaping.StaticRelations {
	t.Helper()
	rel := shaping.NewStaticRelations()
	require.NoError(t, rel.Add("route", "", "", records(t, `[{"id":1,"name":"R1"},{"id":2,"name":"R2"}]`)))
	require.NoError(t, rel.Add("stop", "stopId", "code", records(t, `[{"code":"S1","city":"Oslo"}]`)))
	return rel
}

func TestStaticRelations_AttachRecord(t *testing.T) {
	rel := newRelations(t)
	rec := jsonval.RecordOf("routeId", int64(2), "stopId", "S1")

	out, err := rel.Attach(rec, "route, stop")
	require.NoError(t, err)
	attached := out.(*jsonval.Record)

	name, err := render.ResolveName(attached, "route@name")
	require.NoError(t, err)
	assert.Equal(t, "R2", name)
	city, err := render.ResolveName(attached, "stop@city")
	require.NoError(t, err)
	assert.Equal(t, "Oslo", city)

	assert.False(t, rec.Has(render.RelationInfoKey("route")), "input record must not be modified")
}

func TestStaticRelations_AttachList(t *testing.T) {
	rel := newRelations(t)
	unmatched := jsonval.RecordOf("routeId", int64(9))
	list := jsonval.NewList(jsonval.RecordOf("routeId", int64(1)), unmatched, "text")

	out, err := rel.Attach(list, "route")
	require.NoError(t, err)
	got := out.(*jsonval.List)
	require.Equal(t, 3, got.Len())

	assert.True(t, got.At(0).(*jsonval.Record).Has("route.relationInfo"))
	assert.Same(t, unmatched, got.At(1), "records without a match pass through")
	assert.Equal(t, "text", got.At(2))
}

func TestStaticRelations_Errors(t *testing.T) {
	rel := newRelations(t)

	_, err := rel.Attach(jsonval.NewRecord(), "bus")
	assert.True(t, errs.IsEmpty(err))

	_, err = rel.Attach(jsonval.NewRecord(), " , ")
	assert.True(t, errs.IsEmpty(err))

	_, err = rel.Attach("text", "route")
	assert.True(t, errs.IsTypeMismatch(err))

	assert.True(t, errs.IsEmpty(rel.Add("", "", "", jsonval.NewList())))
	assert.True(t, errs.IsTypeMismatch(rel.Add("x", "", "", jsonval.NewList("row"))))

	out, err := rel.Attach(nil, "route")
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestRelationInfo_ThroughEngine(t *testing.T) {
	e := newEngine(t, newRelations(t))
	list := records(t, `[{"routeId":1},{"routeId":2},{"routeId":3}]`)

	got, err := e.Eval(`join(extractor(relationInfo(list, "route"), "$${route@name}"), ",")`, map[string]any{"list": list})
	require.NoError(t, err)
	assert.Equal(t, "R1,R2,", got)

	entity := jsonval.RecordOf("stopId", "S1")
	got, err = e.Eval(`relationInfo(entity, "stop")`, map[string]any{"entity": entity})
	require.NoError(t, err)
	assert.True(t, got.(*jsonval.Record).Has("stop.relationInfo"))

	_, err = e.Eval(`relationInfo(list, "bus")`, map[string]any{"list": list})
	assert.True(t, errs.IsEmpty(err))
}

func TestRelationInfo_NoTables(t *testing.T) {
	e := newEngine(t, nil)
	_, err := e.Eval(`relationInfo(entity, "route")`, map[string]any{"entity": jsonval.NewRecord()})
	require.Error(t, err)
	assert.True(t, errs.IsEmpty(err))
}

func TestStaticRelations_ConcurrentAttach(t *testing.T) {
	rel := newRelations(t)
	list := jsonval.NewList(jsonval.RecordOf("routeId", int64(1)))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out, err := rel.Attach(list, "route")
			assert.NoError(t, err)
			assert.Equal(t, 1, out.(*jsonval.List).Len())
		}()
	}
	wg.Wait()
	assert.False(t, list.At(0).(*jsonval.Record).Has("route.relationInfo"))
}
