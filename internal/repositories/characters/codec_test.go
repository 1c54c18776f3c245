package characters_test

import (
	"testing"

	"github.com/KirkDiggler/sparta-village/internal/domain/character"
	"github.com/KirkDiggler/sparta-village/internal/domain/equipment"
	apperr "github.com/KirkDiggler/sparta-village/internal/errors"
	"github.com/KirkDiggler/sparta-village/internal/repositories/characters"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleRecord = `Chad,전사,3,12,9,80,2650,2
3
수련자 갑옷,방어력 +5 | 수련에 도움을 주는 갑옷입니다.,0,5,1000,Armor,false
낡은 검,공격력 +2 | 쉽게 볼 수 있는 낡은 검 입니다.,2,0,600,Weapon,true
무쇠갑옷,방어력 +9 | 무쇠로 만들어져 튼튼한 갑옷입니다.,0,9,1800,Armor,true
`

func sampleCharacter(t *testing.T) *character.Character {
	t.Helper()

	c := character.Restore("Chad", "전사", character.Stats{
		Level:         3,
		Attack:        12,
		Defense:       9,
		Health:        80,
		Gold:          2650,
		DungeonClears: 2,
	}, nil)
	c.AddItem(&equipment.Item{Name: "수련자 갑옷", Description: "방어력 +5 | 수련에 도움을 주는 갑옷입니다.", DefenseBonus: 5, Price: 1000, Slot: equipment.SlotArmor})
	c.AddItem(&equipment.Item{Name: "낡은 검", Description: "공격력 +2 | 쉽게 볼 수 있는 낡은 검 입니다.", AttackBonus: 2, Price: 600, Slot: equipment.SlotWeapon})
	c.AddItem(&equipment.Item{Name: "무쇠갑옷", Description: "방어력 +9 | 무쇠로 만들어져 튼튼한 갑옷입니다.", DefenseBonus: 9, Price: 1800, Slot: equipment.SlotArmor})
	require.NoError(t, c.Equip(1))
	require.NoError(t, c.Equip(2))
	return c
}

func TestEncode_Format(t *testing.T) {
	data, err := characters.Encode(sampleCharacter(t))
	require.NoError(t, err)

	assert.Equal(t, sampleRecord, string(data))
}

func TestCodec_RoundTrip(t *testing.T) {
	original := sampleCharacter(t)

	data, err := characters.Encode(original)
	require.NoError(t, err)

	decoded, err := characters.Decode(data)
	require.NoError(t, err)

	assert.Equal(t, original, decoded)
	assert.Equal(t, "낡은 검", decoded.EquippedItem(equipment.SlotWeapon).Name)
	assert.Equal(t, "무쇠갑옷", decoded.EquippedItem(equipment.SlotArmor).Name)
	assert.False(t, decoded.IsEquipped(0))
}

func TestCodec_RoundTripEmptyInventory(t *testing.T) {
	original := character.New("Chad", "전사")

	data, err := characters.Encode(original)
	require.NoError(t, err)
	assert.Equal(t, "Chad,전사,1,10,5,100,1500,0\n0\n", string(data))

	decoded, err := characters.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, original, decoded)
}

func TestDecode_Tolerances(t *testing.T) {
	tests := []struct {
		name   string
		record string
	}{
		{name: "crlf line endings", record: "Chad,전사,1,10,5,100,1500,0\r\n1\r\n낡은 검,old,2,0,600,Weapon,true\r\n"},
		{name: "capitalized booleans", record: "Chad,전사,1,10,5,100,1500,0\n1\n낡은 검,old,2,0,600,Weapon,True\n"},
		{name: "trailing blank lines", record: "Chad,전사,1,10,5,100,1500,0\n1\n낡은 검,old,2,0,600,Weapon,true\n\n\n"},
		{name: "no final newline", record: "Chad,전사,1,10,5,100,1500,0\n1\n낡은 검,old,2,0,600,weapon,true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := characters.Decode([]byte(tt.record))
			require.NoError(t, err)

			require.Equal(t, 1, c.ItemCount())
			assert.True(t, c.IsEquipped(0))
			assert.Equal(t, equipment.SlotWeapon, c.EquippedItem(equipment.SlotWeapon).Slot)
		})
	}
}

func TestDecode_NoCharacter(t *testing.T) {
	for _, record := range []string{"", "\n", "  \n\n"} {
		_, err := characters.Decode([]byte(record))
		assert.True(t, apperr.IsNotFound(err), "record %q", record)
	}
}

func TestDecode_Corrupt(t *testing.T) {
	tests := []struct {
		name   string
		record string
	}{
		{name: "garbled level", record: "Chad,전사,x,10,5,100,1500,0\n0\n"},
		{name: "garbled gold", record: "Chad,전사,1,10,5,100,15OO,0\n0\n"},
		{name: "short header", record: "Chad,전사,1,10,5,100,1500\n0\n"},
		{name: "long header", record: "Chad,전사,1,10,5,100,1500,0,7\n0\n"},
		{name: "missing name", record: ",전사,1,10,5,100,1500,0\n0\n"},
		{name: "level zero", record: "Chad,전사,0,10,5,100,1500,0\n0\n"},
		{name: "negative gold", record: "Chad,전사,1,10,5,100,-1,0\n0\n"},
		{name: "negative clears", record: "Chad,전사,1,10,5,100,1,-1\n0\n"},
		{name: "negative attack", record: "Chad,전사,1,-10,5,100,1,0\n0\n"},
		{name: "missing count", record: "Chad,전사,1,10,5,100,1500,0\n"},
		{name: "garbled count", record: "Chad,전사,1,10,5,100,1500,0\ntwo\n"},
		{name: "negative count", record: "Chad,전사,1,10,5,100,1500,0\n-1\n"},
		{name: "too few items", record: "Chad,전사,1,10,5,100,1500,0\n2\n검,d,2,0,600,Weapon,false\n"},
		{name: "too many items", record: "Chad,전사,1,10,5,100,1500,0\n0\n검,d,2,0,600,Weapon,false\n"},
		{name: "unknown slot", record: "Chad,전사,1,10,5,100,1500,0\n1\n방패,d,0,2,600,Shield,false\n"},
		{name: "bad flag", record: "Chad,전사,1,10,5,100,1500,0\n1\n검,d,2,0,600,Weapon,yes\n"},
		{name: "garbled price", record: "Chad,전사,1,10,5,100,1500,0\n1\n검,d,2,0,6OO,Weapon,false\n"},
		{name: "negative bonus", record: "Chad,전사,1,10,5,100,1500,0\n1\n검,d,-2,0,600,Weapon,false\n"},
		{name: "item with comma in description", record: "Chad,전사,1,10,5,100,1500,0\n1\n검,sharp, old,2,0,600,Weapon,false\n"},
		{name: "leading blank line", record: "\nChad,전사,1,10,5,100,1500,0\n0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := characters.Decode([]byte(tt.record))
			assert.Nil(t, c)
			assert.True(t, apperr.IsCorruptSave(err), "got %v", err)
		})
	}
}

func TestDecode_SameSlotTwiceKeepsLast(t *testing.T) {
	record := "Chad,전사,1,10,5,100,1500,0\n2\na,d,0,5,1,Armor,true\nb,d,0,9,1,Armor,true\n"

	c, err := characters.Decode([]byte(record))
	require.NoError(t, err)

	assert.False(t, c.IsEquipped(0))
	assert.True(t, c.IsEquipped(1))
	first, _ := c.Item(0)
	assert.False(t, first.Equipped)
}

func TestEncode_RejectsSeparators(t *testing.T) {
	c := character.New("Chad, the Bold", "전사")
	_, err := characters.Encode(c)
	assert.True(t, apperr.IsInvalidArgument(err))

	c = character.New("Chad", "전사")
	c.AddItem(&equipment.Item{Name: "검", Description: "line\nbreak", Slot: equipment.SlotWeapon})
	_, err = characters.Encode(c)
	assert.True(t, apperr.IsInvalidArgument(err))

	_, err = characters.Encode(nil)
	assert.True(t, apperr.IsInvalidArgument(err))
}
