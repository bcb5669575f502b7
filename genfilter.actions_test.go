package genfilter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertAction_StreamsFragments(t *testing.T) {
	action := &InsertAction{}
	action.SetInput([]string{`<import file="a.xsl"/>`, `<import file="b.xsl"/>`})

	recorder := NewEventRecorder()
	require.NoError(t, action.WriteResult(context.Background(), recorder))

	var files []string
	for _, ev := range recorder.events {
		if ev.kind == eventStartElement {
			file, ok := ev.attrs.Value("", "file")
			require.True(t, ok)
			files = append(files, file)
		}
	}
	assert.Equal(t, []string{"a.xsl", "b.xsl"}, files)
}

func TestInsertAction_FragmentWithTextAndNesting(t *testing.T) {
	action := &InsertAction{}
	action.SetInput([]string{`<outer><inner>text</inner></outer>`})

	recorder := NewEventRecorder()
	require.NoError(t, action.WriteResult(context.Background(), recorder))

	assert.Equal(t, []string{"outer", "inner"}, elementLocals(recorder))
	assert.Equal(t, "text", eventData(recorder))
}

func TestInsertAction_MalformedFragmentFails(t *testing.T) {
	action := &InsertAction{}
	action.SetInput([]string{`<broken`})

	recorder := NewEventRecorder()
	err := action.WriteResult(context.Background(), recorder)
	require.Error(t, err)
}

func TestInsertAction_EmptyInput(t *testing.T) {
	action := &InsertAction{}
	action.SetInput([]string{})

	recorder := NewEventRecorder()
	require.NoError(t, action.WriteResult(context.Background(), recorder))
	assert.Equal(t, 0, recorder.Len())
}

func TestInsertAction_RejectsValueForm(t *testing.T) {
	action := &InsertAction{}
	_, err := action.Result(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgValueFormUnsupported)
}

func TestTextAction_EmitsValuesAsLines(t *testing.T) {
	action := &TextAction{}
	action.SetInput([]string{"one", "two"})

	recorder := NewEventRecorder()
	require.NoError(t, action.WriteResult(context.Background(), recorder))
	assert.Equal(t, "one\ntwo", eventData(recorder))
}

func TestTextAction_EmptyInputEmitsNothing(t *testing.T) {
	action := &TextAction{}
	action.SetInput([]string{})

	recorder := NewEventRecorder()
	require.NoError(t, action.WriteResult(context.Background(), recorder))
	assert.Equal(t, 0, recorder.Len())
}

func TestJoinAction_DefaultSeparator(t *testing.T) {
	action := &JoinAction{}
	action.SetInput([]string{"a", "b", "c"})

	result, err := action.Result(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "a,b,c", result)
}

func TestJoinAction_SeparatorParam(t *testing.T) {
	action := &JoinAction{}
	action.SetInput([]string{"a", "b"})
	action.AddParam(ParamSeparator, " ")

	result, err := action.Result(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "a b", result)
}

func TestJoinAction_RejectsStreamForm(t *testing.T) {
	action := &JoinAction{}
	err := action.WriteResult(context.Background(), NewEventRecorder())
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgStreamFormUnsupported)
}

func TestBaseAction_Defaults(t *testing.T) {
	var base BaseAction

	assert.NotNil(t, base.Input())
	assert.Empty(t, base.Input())
	assert.NotNil(t, base.Logger())
	assert.Equal(t, "x", base.ParamDefault("missing", "x"))

	base.AddParam("k", "v")
	value, ok := base.Param("k")
	require.True(t, ok)
	assert.Equal(t, "v", value)
}
