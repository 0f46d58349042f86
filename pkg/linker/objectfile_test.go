package linker

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestObjectFile(t *testing.T) {
	obj := sumObject()

	require.Equal(t, 0, obj.FindSectionIndex(SectionText))
	require.Equal(t, 2, obj.FindSectionIndex(SectionSymtab))
	require.Equal(t, -1, obj.FindSectionIndex(SectionRodata))
	require.Nil(t, obj.FindSection(SectionRodata))

	symtab := obj.FindSection(SectionSymtab)
	require.Equal(t, []Line{
		"sum,STB_GLOBAL,STT_FUNC,.text,0,5",
		"bias,STB_GLOBAL,STT_OBJECT,.data,0,1",
	}, obj.SectionLines(symtab))
	require.Nil(t, obj.SectionLines(&SectionHeader{Offset: 12, Size: 2}))
	require.Nil(t, obj.SectionLines(&SectionHeader{Offset: 100, Size: 0}))

	require.Len(t, obj.Relocs(SectionText), 1)
	require.Empty(t, obj.Relocs(SectionData))
	require.Empty(t, obj.Relocs(SectionRodata))

	require.Equal(t, "13\n3\n.text,0x0,5,5\n", obj.String()[:len("13\n3\n.text,0x0,5,5\n")])
}

func TestFingerprint(t *testing.T) {
	a, b := sumObject(), sumObject()
	require.Equal(t, a.Fingerprint(), b.Fingerprint())

	b.Lines[5] = "push   %rbx"
	require.NotEqual(t, a.Fingerprint(), b.Fingerprint())
}

func TestInputSection(t *testing.T) {
	obj := mainObject()
	isec := NewInputSection(obj, uint32(obj.FindSectionIndex(SectionData)))

	require.Equal(t, SectionData, isec.Name())
	require.Len(t, isec.Contents, 3)
	require.Equal(t, []Line{"0x0000000000000034", "0x0000000000000000"}, isec.GetLines(1, 2))
	require.Panics(t, func() { isec.GetLines(2, 2) })
}
