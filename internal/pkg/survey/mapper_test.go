package survey

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapGender(t *testing.T) {
	assert.Equal(t, 1, MapGender("หญิง"))
	assert.Equal(t, 0, MapGender("ชาย"))
	assert.Equal(t, 1, MapGender("1"))
	assert.Equal(t, 0, MapGender(float64(0)))
	assert.Nil(t, MapGender(nil))
	assert.Nil(t, MapGender("unknown"))
}

func TestMapYearLevel(t *testing.T) {
	assert.Equal(t, 4, MapYearLevel("ชั้นปีที่ 4"))
	assert.Equal(t, 5, MapYearLevel("5"))
	assert.Equal(t, 6, MapYearLevel(float64(6)))
	assert.Nil(t, MapYearLevel("ชั้นปีที่ 3"))
	assert.Nil(t, MapYearLevel(nil))
}

func TestMapTriState(t *testing.T) {
	assert.Equal(t, 1, MapTriState("ใช่"))
	assert.Equal(t, 0, MapTriState("ไม่ใช่"))
	assert.Equal(t, 2, MapTriState("ไม่แน่ใจ"))
	assert.Equal(t, 1, MapTriState(true))
	assert.Equal(t, 0, MapTriState(false))
	assert.Equal(t, 2, MapTriState(float64(2)))
	assert.Nil(t, MapTriState(float64(7)))
	assert.Nil(t, MapTriState("maybe"))
	assert.Nil(t, MapTriState(nil))
}

func TestMapWeightStatusEn(t *testing.T) {
	assert.Equal(t, "Overweight", MapWeightStatusEn("น้ำหนักเกิน"))
	assert.Equal(t, "Normal weight", MapWeightStatusEn("น้ำหนักปกติ"))
	assert.Equal(t, "Underweight", MapWeightStatusEn("น้ำหนักน้อยกว่าปกติ"))
	assert.Equal(t, "Unsure", MapWeightStatusEn("ไม่แน่ใจ"))
	// Unrecognized answers pass through untouched.
	assert.Equal(t, "something else", MapWeightStatusEn("something else"))
	assert.Nil(t, MapWeightStatusEn(nil))
}

func TestMapStressLevelEn(t *testing.T) {
	assert.Equal(t, "Low", MapStressLevelEn("ความเครียดน้อย"))
	assert.Equal(t, "Moderate", MapStressLevelEn("ความเครียดปานกลาง"))
	assert.Equal(t, "High", MapStressLevelEn("ความเครียดมาก"))
	assert.Equal(t, "Very high", MapStressLevelEn("ความเครียดมากที่สุด"))
	assert.Nil(t, MapStressLevelEn(nil))
}

func TestMapToCode(t *testing.T) {
	assert.Equal(t, "0", MapToCode("ไม่มี"))
	assert.Equal(t, "1", MapToCode("มี"))
	assert.Equal(t, "Others ระบุ", MapToCode("อื่นๆ ระบุ"))
	assert.Equal(t, "paracetamol", MapToCode("paracetamol"))
	assert.Nil(t, MapToCode(nil))
}

func TestListToText(t *testing.T) {
	t.Run("joins entries with slash separator", func(t *testing.T) {
		got := ListToText([]interface{}{"ยาแก้แพ้", "วิตามิน"})
		assert.Equal(t, "ยาแก้แพ้ / วิตามิน", got)
	})

	t.Run("drops blank and nil entries", func(t *testing.T) {
		got := ListToText([]interface{}{"", nil, "  ", "ยา"})
		assert.Equal(t, "ยา", got)
	})

	t.Run("all-blank list is nil", func(t *testing.T) {
		assert.Nil(t, ListToText([]interface{}{"", nil}))
	})

	t.Run("non-list passes through as string", func(t *testing.T) {
		assert.Equal(t, "ไม่มี", ListToText("ไม่มี"))
	})

	t.Run("nil stays nil", func(t *testing.T) {
		assert.Nil(t, ListToText(nil))
	})
}
