package characters

import (
	"bufio"
	"bytes"
	"strconv"
	"strings"

	"github.com/KirkDiggler/sparta-village/internal/domain/character"
	"github.com/KirkDiggler/sparta-village/internal/domain/equipment"
	apperr "github.com/KirkDiggler/sparta-village/internal/errors"
)

// A save record is line oriented with comma separated fields and no
// escaping:
//
//	name,class,level,attack,defense,health,gold,dungeonClears
//	inventoryCount
//	itemName,description,attackBonus,defenseBonus,price,slot,equipped
const (
	fieldSeparator = ","
	headerFields   = 8
	itemFields     = 7
)

// Encode renders a character as a save record
func Encode(char *character.Character) ([]byte, error) {
	if char == nil {
		return nil, apperr.InvalidArgument("character cannot be nil")
	}

	for _, field := range []string{char.Name, char.Class} {
		if err := checkField(field); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	writeLine(&buf,
		char.Name,
		char.Class,
		strconv.Itoa(char.Level),
		strconv.Itoa(char.Attack),
		strconv.Itoa(char.Defense),
		strconv.Itoa(char.Health),
		strconv.Itoa(char.Gold),
		strconv.Itoa(char.DungeonClears),
	)

	items := char.Items()
	writeLine(&buf, strconv.Itoa(len(items)))

	for _, item := range items {
		for _, field := range []string{item.Name, item.Description} {
			if err := checkField(field); err != nil {
				return nil, err
			}
		}
		writeLine(&buf,
			item.Name,
			item.Description,
			strconv.Itoa(item.AttackBonus),
			strconv.Itoa(item.DefenseBonus),
			strconv.Itoa(item.Price),
			item.Slot.String(),
			strconv.FormatBool(item.Equipped),
		)
	}

	return buf.Bytes(), nil
}

// Decode parses a save record. Input with no header line is NotFound; any
// malformed content is CorruptSave.
func Decode(data []byte) (*character.Character, error) {
	lines, err := splitLines(data)
	if err != nil {
		return nil, apperr.WrapWithCode(err, apperr.CodeCorruptSave, "unreadable save record")
	}
	if len(lines) == 0 {
		return nil, apperr.NotFound("save record is empty")
	}

	name, class, stats, err := decodeHeader(lines[0])
	if err != nil {
		return nil, err
	}

	if len(lines) < 2 {
		return nil, apperr.CorruptSavef("missing inventory count")
	}
	count, err := decodeInt(lines[1], "inventory count", 2)
	if err != nil {
		return nil, err
	}
	if count < 0 {
		return nil, apperr.CorruptSavef("negative inventory count %d", count)
	}
	if len(lines)-2 != count {
		return nil, apperr.CorruptSavef("inventory count %d but %d item lines", count, len(lines)-2).
			WithMeta("count", count)
	}

	items := make([]*equipment.Item, 0, count)
	for i := 0; i < count; i++ {
		item, err := decodeItem(lines[2+i], 3+i)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return character.Restore(name, class, stats, items), nil
}

func decodeHeader(line string) (string, string, character.Stats, error) {
	fields := strings.Split(line, fieldSeparator)
	if len(fields) != headerFields {
		return "", "", character.Stats{}, apperr.CorruptSavef("header has %d fields, want %d", len(fields), headerFields).
			WithMeta("line", 1)
	}
	if fields[0] == "" {
		return "", "", character.Stats{}, apperr.CorruptSavef("header is missing the character name").
			WithMeta("line", 1)
	}

	names := []string{"level", "attack", "defense", "health", "gold", "dungeon clear count"}
	values := make([]int, len(names))
	for i, field := range fields[2:] {
		v, err := decodeInt(field, names[i], 1)
		if err != nil {
			return "", "", character.Stats{}, err
		}
		values[i] = v
	}

	stats := character.Stats{
		Level:         values[0],
		Attack:        values[1],
		Defense:       values[2],
		Health:        values[3],
		Gold:          values[4],
		DungeonClears: values[5],
	}

	switch {
	case stats.Level < 1:
		return "", "", stats, apperr.CorruptSavef("level %d below 1", stats.Level)
	case stats.Attack < 0, stats.Defense < 0:
		return "", "", stats, apperr.CorruptSavef("negative attack or defense")
	case stats.Gold < 0:
		return "", "", stats, apperr.CorruptSavef("negative gold %d", stats.Gold)
	case stats.DungeonClears < 0:
		return "", "", stats, apperr.CorruptSavef("negative dungeon clear count %d", stats.DungeonClears)
	}

	return fields[0], fields[1], stats, nil
}

func decodeItem(line string, lineNo int) (*equipment.Item, error) {
	fields := strings.Split(line, fieldSeparator)
	if len(fields) != itemFields {
		return nil, apperr.CorruptSavef("item has %d fields, want %d", len(fields), itemFields).
			WithMeta("line", lineNo)
	}
	if fields[0] == "" {
		return nil, apperr.CorruptSavef("item is missing its name").
			WithMeta("line", lineNo)
	}

	names := []string{"attack bonus", "defense bonus", "price"}
	values := make([]int, len(names))
	for i, field := range fields[2:5] {
		v, err := decodeInt(field, names[i], lineNo)
		if err != nil {
			return nil, err
		}
		if v < 0 {
			return nil, apperr.CorruptSavef("negative %s %d", names[i], v).
				WithMeta("line", lineNo)
		}
		values[i] = v
	}

	slot, err := equipment.ParseSlot(fields[5])
	if err != nil {
		return nil, apperr.WrapWithCode(err, apperr.CodeCorruptSave, "bad item slot").
			WithMeta("line", lineNo)
	}

	equipped, err := strconv.ParseBool(fields[6])
	if err != nil {
		return nil, apperr.WrapWithCode(err, apperr.CodeCorruptSave, "bad equipped flag").
			WithMeta("line", lineNo)
	}

	return &equipment.Item{
		Name:         fields[0],
		Description:  fields[1],
		AttackBonus:  values[0],
		DefenseBonus: values[1],
		Price:        values[2],
		Slot:         slot,
		Equipped:     equipped,
	}, nil
}

func decodeInt(field, name string, lineNo int) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(field))
	if err != nil {
		return 0, apperr.WrapWithCode(err, apperr.CodeCorruptSave, "bad "+name).
			WithMeta("line", lineNo)
	}
	return v, nil
}

// splitLines returns the record's lines without line endings or trailing
// blank lines
func splitLines(data []byte) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 4096), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines, nil
}

func checkField(field string) error {
	if strings.ContainsAny(field, fieldSeparator+"\r\n") {
		return apperr.InvalidArgumentf("field %q contains a separator or line break", field)
	}
	return nil
}

func writeLine(buf *bytes.Buffer, fields ...string) {
	buf.WriteString(strings.Join(fields, fieldSeparator))
	buf.WriteByte('\n')
}
