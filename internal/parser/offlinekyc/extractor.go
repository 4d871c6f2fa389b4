package offlinekyc

import "fmt"

// Parse loads raw XML with ParseTree and extracts it. Loader failures are
// reported as *MalformedDocumentError wrapping the *LoaderError.
func Parse(raw []byte) (*ParsedDocument, error) {
	return NewParser(nil).Parse(raw)
}

// Parser pairs a Loader with Extract.
type Parser struct {
	load Loader
}

// NewParser creates a Parser. A nil loader selects ParseTree.
func NewParser(load Loader) *Parser {
	if load == nil {
		load = ParseTree
	}
	return &Parser{load: load}
}

// Parse runs the loader and the extractor over one document.
func (p *Parser) Parse(raw []byte) (*ParsedDocument, error) {
	tree, err := p.load(raw)
	if err != nil {
		return nil, malformed("loading document", err)
	}
	return Extract(tree)
}

// Extract walks tree in a single pass and builds a ParsedDocument. Missing
// attributes and sections yield nil fields; attributes that are present but
// empty are kept as "". Photo text is kept verbatim whenever it is non-empty,
// including whitespace-only content. It fails only when the tree has
// no root or the traversal itself panics; both are reported as
// *MalformedDocumentError.
func Extract(tree *Tree) (doc *ParsedDocument, err error) {
	if tree == nil || tree.Root == nil {
		return nil, malformed("reading root", errNoRoot)
	}

	defer func() {
		if r := recover(); r != nil {
			doc = nil
			err = malformed("walking document", fmt.Errorf("%v", r))
		}
	}()

	root := tree.Root
	doc = &ParsedDocument{ReferenceID: attr(root, attrReferenceID)}

	uidData := root.Find(elemUIDData)
	if uidData == nil {
		return doc, nil
	}

	if poi := uidData.Find(elemPersonal); poi != nil {
		doc.PersonalDetails = &PersonalDetails{
			Name:          attr(poi, "name"),
			DateOfBirth:   attr(poi, "dob"),
			Gender:        attr(poi, "gender"),
			DOBMatchScore: attr(poi, "m"),
		}
	}

	if poa := uidData.Find(elemAddress); poa != nil {
		doc.AddressDetails = &AddressDetails{
			CareOf:          attr(poa, "careof"),
			House:           attr(poa, "house"),
			Street:          attr(poa, "street"),
			Landmark:        attr(poa, "landmark"),
			Locality:        attr(poa, "loc"),
			VillageTownCity: attr(poa, "vtc"),
			PostOffice:      attr(poa, "po"),
			SubDistrict:     attr(poa, "subdist"),
			District:        attr(poa, "dist"),
			State:           attr(poa, "state"),
			Country:         attr(poa, "country"),
			Pincode:         attr(poa, "pc"),
		}
	}

	if pht := uidData.Find(elemPhoto); pht != nil && pht.Text != "" {
		photo := pht.Text
		doc.Photo = &photo
	}

	return doc, nil
}

// attr returns nil only for a missing attribute.
func attr(el *Element, name string) *string {
	v, ok := el.Attr(name)
	if !ok {
		return nil
	}
	return &v
}
