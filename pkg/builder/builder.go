// Package builder walks a workspace config and issues creation calls
// in dependency order: space, then folder, then list, then custom
// fields, a status check and finally the space views. A child is only
// attempted once its parent's remote ID is known; any single failure
// is logged and the walk continues.
package builder

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/heliosam/clickup-setup/pkg/clickup"
	"github.com/heliosam/clickup-setup/pkg/config"
)

// API is the slice of the remote client the builder needs.
type API interface {
	CreateSpace(ctx context.Context, req clickup.CreateSpaceRequest) (string, error)
	CreateFolder(ctx context.Context, spaceID, name string) (string, error)
	CreateList(ctx context.Context, folderID, name string) (string, error)
	CreateCustomField(ctx context.Context, listID string, field clickup.CustomFieldRequest) (string, error)
	ListStatuses(ctx context.Context, listID string) ([]string, error)
	CreateView(ctx context.Context, spaceID string, view clickup.ViewRequest) (string, error)
}

// Builder drives one provisioning run.
type Builder struct {
	api API
	cfg *config.Workspace
	out io.Writer
	log *logrus.Logger
}

// New wires a builder. Progress lines go to out; warnings go to log.
func New(api API, cfg *config.Workspace, out io.Writer, log *logrus.Logger) *Builder {
	if out == nil {
		out = io.Discard
	}
	if log == nil {
		log = logrus.New()
	}
	return &Builder{api: api, cfg: cfg, out: out, log: log}
}

// Build creates the whole workspace and returns the mirrored
// structure. It never aborts on a remote failure: a failed space
// create skips that space's children, a failed folder create skips its
// lists, and a failed field or view is merely reported.
func (b *Builder) Build(ctx context.Context) *Structure {
	st := &Structure{Spaces: make(map[string]*Space)}

	fmt.Fprintln(b.out, "🚀 Starting ClickUp workspace setup...")

	for _, spCfg := range b.cfg.Spaces {
		node := &Space{
			Name:             spCfg.Name,
			Key:              spCfg.Key,
			StatusesVerified: true,
			Folders:          make(map[string]*Folder),
		}
		st.Spaces[spCfg.Key] = node
		st.Order = append(st.Order, spCfg.Key)

		id, err := b.api.CreateSpace(ctx, spaceRequest(spCfg))
		if err != nil || id == "" {
			b.log.Warnf("create space %q failed, skipping its folders: %v", spCfg.Name, err)
			continue
		}
		node.ID = id
		st.Stats.Spaces++
		fmt.Fprintf(b.out, "   ✓ Space %s: %s\n", spCfg.Name, id)

		b.buildSpace(ctx, st, node, spCfg)
		b.createViews(ctx, st, node, spCfg.Key)
	}

	fmt.Fprintln(b.out, "✅ Workspace setup complete")
	return st
}

func (b *Builder) buildSpace(ctx context.Context, st *Structure, node *Space, spCfg config.Space) {
	for _, folderCfg := range spCfg.Folders {
		fmt.Fprintf(b.out, "   Creating folder: %s\n", folderCfg.Name)

		folderID, err := b.api.CreateFolder(ctx, node.ID, folderCfg.Name)
		if err != nil || folderID == "" {
			b.log.Warnf("create folder %q in space %q failed, skipping its lists: %v", folderCfg.Name, spCfg.Name, err)
			continue
		}
		folder := &Folder{Name: folderCfg.Name, ID: folderID, Lists: make(map[string]*List)}
		node.Folders[folderCfg.Name] = folder
		node.FolderOrder = append(node.FolderOrder, folderCfg.Name)
		st.Stats.Folders++

		for _, listCfg := range folderCfg.Lists {
			listID, err := b.api.CreateList(ctx, folderID, listCfg.Name)
			if err != nil || listID == "" {
				b.log.Warnf("create list %q in folder %q failed: %v", listCfg.Name, folderCfg.Name, err)
				continue
			}
			folder.Lists[listCfg.Name] = &List{Name: listCfg.Name, Type: listCfg.Type, ID: listID}
			st.Stats.Lists++
			fmt.Fprintf(b.out, "      ✓ List %s: %s\n", listCfg.Name, listID)

			b.addCustomFields(ctx, st, spCfg.Key, folderCfg.Name, listCfg, listID)

			if !b.checkStatuses(ctx, listCfg, listID) {
				node.StatusesVerified = false
			}
		}
	}
}

func spaceRequest(sp config.Space) clickup.CreateSpaceRequest {
	features := clickup.DefaultSpaceFeatures()
	for name, enabled := range sp.Features {
		features.Set(name, enabled)
	}
	return clickup.CreateSpaceRequest{
		Name:              sp.Name,
		MultipleAssignees: sp.MultiAssignees(),
		Features:          features,
	}
}

// addCustomFields attaches every applicable field to a freshly created
// list. Types the API cannot create are recorded in the skip log and
// never sent.
func (b *Builder) addCustomFields(ctx context.Context, st *Structure, spaceKey, folderName string, listCfg config.List, listID string) {
	for _, field := range b.cfg.FieldsFor(listCfg.Type) {
		req, ok := translateField(field)
		if !ok {
			st.Skipped = append(st.Skipped, SkippedField{
				Space:  spaceKey,
				Folder: folderName,
				List:   listCfg.Name,
				Field:  field.Name,
				Reason: fmt.Sprintf("field type %q is not supported by the API", field.Type),
			})
			b.log.Warnf("skipping field %q on list %q: type %q not creatable via API", field.Name, listCfg.Name, field.Type)
			continue
		}
		if _, err := b.api.CreateCustomField(ctx, listID, req); err != nil {
			b.log.Warnf("create field %q on list %q failed: %v", field.Name, listCfg.Name, err)
			continue
		}
		st.Stats.Fields++
	}
}

// checkStatuses verifies that every status name required by the
// workflows governing this list's type already exists remotely.
// Statuses cannot be created through the API, so missing names are a
// manual follow-up, not an error. A list with no applicable workflow
// passes vacuously.
func (b *Builder) checkStatuses(ctx context.Context, listCfg config.List, listID string) bool {
	required := b.cfg.StatusesFor(listCfg.Type)
	if len(required) == 0 {
		return true
	}

	remote, err := b.api.ListStatuses(ctx, listID)
	if err != nil {
		b.log.Warnf("status check for list %q failed: %v", listCfg.Name, err)
		return false
	}
	existing := make(map[string]bool, len(remote))
	for _, name := range remote {
		existing[strings.ToLower(strings.TrimSpace(name))] = true
	}

	var missing []string
	for _, s := range required {
		name := strings.TrimSpace(s.Name)
		if name != "" && !existing[strings.ToLower(name)] {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		b.log.Warnf("list %q is missing statuses (create them in the ClickUp UI): %s", listCfg.Name, strings.Join(missing, ", "))
		return false
	}
	fmt.Fprintf(b.out, "      ✓ All required statuses exist on %s\n", listCfg.Name)
	return true
}

// createViews creates the configured views for a space, best effort.
// The views API has limited support upstream; a failure only produces
// a hint to create the view manually.
func (b *Builder) createViews(ctx context.Context, st *Structure, node *Space, spaceKey string) {
	views := b.cfg.Views[spaceKey]
	if len(views) == 0 {
		return
	}
	fmt.Fprintf(b.out, "   📊 Creating views for %s...\n", spaceKey)
	for _, v := range views {
		viewType := v.Type
		if viewType == "" {
			viewType = "list"
		}
		req := clickup.ViewRequest{
			Name:     v.Name,
			Type:     viewType,
			Grouping: v.Grouping,
			Sorting:  v.SortBy,
			Filters:  v.Filters,
			Columns:  v.Columns,
		}
		id, err := b.api.CreateView(ctx, node.ID, req)
		if err != nil || id == "" {
			b.log.Warnf("view %q (%s) could not be created via API, create it in the ClickUp UI: %v", v.Name, viewType, err)
			continue
		}
		st.Stats.Views++
		fmt.Fprintf(b.out, "      ✓ View %s: %s\n", v.Name, id)
	}
}
