package resource

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"strings"

	"github.com/snapcore/go-timeago/pluralforms"
)

const le_magic = 0x950412de
const be_magic = 0xde120495

// ErrInvalidMO is returned when a .mo resource is not a valid gettext
// message catalogue.
var ErrInvalidMO = errors.New("invalid mo catalogue")

type header struct {
	Magic          uint32
	Version        uint32
	NumStrings     uint32
	OrigTabOffset  uint32
	TransTabOffset uint32
	HashTabSize    uint32
	HashTabOffset  uint32
}

func (header header) get_major_version() uint32 {
	return header.Version >> 16
}

func (header header) get_minor_version() uint32 {
	return header.Version & 0xffff
}

// mofile gives indexed access to the string tables of a mapped .mo file.
type mofile struct {
	data  []byte
	order binary.ByteOrder

	numStrings int
	origTab    []byte
	transTab   []byte

	info        map[string]string
	pluralforms string
	charset     string
}

func (mo *mofile) msgID(idx int) []byte {
	strLen := mo.order.Uint32(mo.origTab[8*idx:])
	strOffset := mo.order.Uint32(mo.origTab[8*idx+4:])
	return mo.data[strOffset : strOffset+strLen]
}

func (mo *mofile) msgStr(idx int) []byte {
	strLen := mo.order.Uint32(mo.transTab[8*idx:])
	strOffset := mo.order.Uint32(mo.transTab[8*idx+4:])
	return mo.data[strOffset : strOffset+strLen]
}

// messages copies every entry out of the mapping. Plural entries keep
// their first msgid as key and join the translated forms with "|" so they
// read as a phrase template; context entries are keyed "context.msgid".
func (mo *mofile) messages() map[string]string {
	messages := make(map[string]string, mo.numStrings)
	for i := 0; i < mo.numStrings; i++ {
		msgid := mo.msgID(i)
		if zero := bytes.IndexByte(msgid, '\x00'); zero >= 0 {
			msgid = msgid[:zero]
		}
		if len(msgid) == 0 {
			// catalogue header
			continue
		}
		key := strings.Replace(string(msgid), "\x04", ".", 1)
		forms := bytes.Split(mo.msgStr(i), []byte{0})
		alternatives := make([]string, 0, len(forms))
		for _, form := range forms {
			alternatives = append(alternatives, strings.ReplaceAll(string(form), "|", "||"))
		}
		messages[key] = strings.Join(alternatives, "|")
	}
	return messages
}

func (mo *mofile) read_info(info string) {
	mo.info = make(map[string]string)
	lastk := ""
	for _, line := range strings.Split(info, "\n") {
		item := strings.TrimSpace(line)
		if len(item) == 0 {
			continue
		}
		var k string
		var v string
		if strings.Contains(item, ":") {
			tmp := strings.SplitN(item, ":", 2)
			k = strings.ToLower(strings.TrimSpace(tmp[0]))
			v = strings.TrimSpace(tmp[1])
			mo.info[k] = v
			lastk = k
		} else if len(lastk) != 0 {
			mo.info[lastk] += "\n" + item
		}
		switch k {
		case "content-type":
			if _, charset, ok := strings.Cut(v, "charset="); ok {
				mo.charset = charset
			}
		case "plural-forms":
			mo.pluralforms = v
		}
	}
}

func validateStringTable(data []byte, table []byte, numStrings int, order binary.ByteOrder) error {
	for i := 0; i < numStrings; i++ {
		strLen := order.Uint32(table[8*i:])
		strOffset := order.Uint32(table[8*i+4:])
		if uint64(strLen)+uint64(strOffset) > uint64(len(data)) {
			return fmt.Errorf("string %d data (len=%x, offset=%x) is out of bounds", i, strLen, strOffset)
		}
	}
	return nil
}

// parseMO validates the header and string tables of a .mo file held in
// data. The returned mofile references data without copying it.
func parseMO(data []byte) (*mofile, error) {
	var header header
	headerSize := binary.Size(&header)
	if len(data) < headerSize {
		return nil, errors.Join(ErrInvalidMO, fmt.Errorf("message catalogue is too short"))
	}

	var order binary.ByteOrder = binary.LittleEndian
	magic := order.Uint32(data)
	switch magic {
	case le_magic:
		// nothing
	case be_magic:
		order = binary.BigEndian
	default:
		return nil, errors.Join(ErrInvalidMO, fmt.Errorf("wrong magic: %d", magic))
	}
	if err := binary.Read(bytes.NewBuffer(data[:headerSize]), order, &header); err != nil {
		return nil, errors.Join(ErrInvalidMO, err)
	}
	if header.get_major_version() != 0 && header.get_major_version() != 1 {
		return nil, errors.Join(ErrInvalidMO, fmt.Errorf("unsupported version: %d.%d", header.get_major_version(), header.get_minor_version()))
	}
	numStrings := int(header.NumStrings)

	if uint64(header.OrigTabOffset)+8*uint64(header.NumStrings) > uint64(len(data)) {
		return nil, errors.Join(ErrInvalidMO, fmt.Errorf("original strings table out of bounds"))
	}
	origTab := data[header.OrigTabOffset : header.OrigTabOffset+8*header.NumStrings]
	if err := validateStringTable(data, origTab, numStrings, order); err != nil {
		return nil, errors.Join(ErrInvalidMO, err)
	}

	if uint64(header.TransTabOffset)+8*uint64(header.NumStrings) > uint64(len(data)) {
		return nil, errors.Join(ErrInvalidMO, fmt.Errorf("translated strings table out of bounds"))
	}
	transTab := data[header.TransTabOffset : header.TransTabOffset+8*header.NumStrings]
	if err := validateStringTable(data, transTab, numStrings, order); err != nil {
		return nil, errors.Join(ErrInvalidMO, err)
	}

	mo := &mofile{
		data:  data,
		order: order,

		numStrings: numStrings,
		origTab:    origTab,
		transTab:   transTab,
	}
	// Read catalogue header if available
	if mo.numStrings > 0 && len(mo.msgID(0)) == 0 {
		msgstr := mo.msgStr(0)
		if zero := bytes.IndexByte(msgstr, '\x00'); zero >= 0 {
			msgstr = msgstr[:zero]
		}
		mo.read_info(string(msgstr))
	}
	return mo, nil
}

// decodeMO reads a .mo catalogue from an opened mapping.
func decodeMO(m *fileMapping) (*Resource, error) {
	mo, err := parseMO(m.data)
	if err != nil {
		return nil, err
	}
	return &Resource{
		Format:      FormatMO,
		Messages:    mo.messages(),
		PluralForms: mo.pluralforms,
	}, nil
}

// EncodeMO writes messages as a little-endian .mo catalogue without a
// hash table. A non-empty pluralForms is stored in the catalogue header.
// Templates are split on "|" into plural forms.
func EncodeMO(messages map[string]string, pluralForms string) []byte {
	keys := sortedKeys(messages)
	ids := make([]string, 0, len(keys)+1)
	strs := make([]string, 0, len(keys)+1)

	info := "Content-Type: text/plain; charset=UTF-8\n"
	if pluralForms != "" {
		info += "Plural-Forms: " + pluralForms + "\n"
	}
	ids = append(ids, "")
	strs = append(strs, info)
	for _, key := range keys {
		ids = append(ids, key)
		strs = append(strs, strings.Join(pluralforms.Split(messages[key]), "\x00"))
	}

	const headerSize = 28
	n := uint32(len(ids))
	origTab := uint32(headerSize)
	transTab := origTab + 8*n
	offset := transTab + 8*n

	var tables, blob bytes.Buffer
	order := binary.LittleEndian
	writeTable := func(values []string) {
		for _, value := range values {
			_ = binary.Write(&tables, order, uint32(len(value)))
			_ = binary.Write(&tables, order, offset+uint32(blob.Len()))
			blob.WriteString(value)
			blob.WriteByte(0)
		}
	}
	writeTable(ids)
	writeTable(strs)

	var out bytes.Buffer
	_ = binary.Write(&out, order, header{
		Magic:          le_magic,
		NumStrings:     n,
		OrigTabOffset:  origTab,
		TransTabOffset: transTab,
	})
	out.Write(tables.Bytes())
	out.Write(blob.Bytes())
	return out.Bytes()
}
