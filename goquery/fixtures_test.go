package goquery_test

const allClassesHTML = `<!DOCTYPE html>
<html><body><main>
<div id="all-classes-table">
<div class="summary-table two-column-summary">
<div class="table-header col-first">Class</div>
<div class="table-header col-last">Description</div>
<div class="col-first even-row-color"><a href="java/util/List.html" title="interface in java.util">List</a></div>
<div class="col-last even-row-color"><div class="block">An ordered collection.</div></div>
<div class="col-first odd-row-color"><a href="java/util/ArrayList.html" title="class in java.util">ArrayList</a></div>
<div class="col-first even-row-color"><a href="java/lang/annotation/RetentionPolicy.html" title="enum class in java.lang.annotation">RetentionPolicy</a></div>
<div class="col-first odd-row-color"><a href="java/lang/annotation/Retention.html" title="annotation interface in java.lang.annotation">Retention</a></div>
<div class="col-first even-row-color"><a href="java/lang/Record.html#skip" title="record class in java.lang">Point</a></div>
<div class="col-first odd-row-color"><a href="java/util/List.html" title="interface in java.util">List</a></div>
<div class="col-first even-row-color"><a href="java/lang/Mystery.html" title="module java.base">Mystery</a></div>
</div></div>
</main></body></html>`

const listHTML = `<!DOCTYPE html>
<html><body><main>
<div class="header"><h1 title="Interface List" class="title">Interface List&lt;E&gt;</h1></div>
<section class="class-description" id="class-description">
<hr>
<div class="type-signature"><span class="modifiers">public interface </span><span class="element-name type-name-label">List&lt;E&gt;</span></div>
<div class="block">An ordered collection, also known as a <i>sequence</i>.</div>
</section>
<section class="details">
<ul class="details-list">
<li>
<section class="field-details" id="field-detail">
<h2>Field Details</h2>
<ul class="member-list">
<li>
<section class="detail" id="EMPTY">
<h3>EMPTY</h3>
<div class="member-signature"><span class="modifiers">static final</span>&nbsp;<span class="return-type">int</span>&nbsp;<span class="element-name">EMPTY</span></div>
<div class="block">Marker.</div>
</section>
</li>
</ul>
</section>
</li>
<li>
<section class="method-details" id="method-detail">
<h2>Method Details</h2>
<ul class="member-list">
<li>
<section class="detail" id="add(int,E)">
<h3>add</h3>
<div class="member-signature"><span class="annotations">@Nullable
</span><span class="return-type">E</span>&nbsp;<span class="element-name">add</span><wbr><span class="parameters">(int&nbsp;index,
 <span class="annotations">@NonNull</span> java.util.Map&lt;K,V&gt;&nbsp;element)</span></div>
<div class="deprecation-block"><span class="deprecated-label">Deprecated, for removal: This API element is subject to removal in a future version.</span>
<div class="deprecation-comment">Use <code>put</code> instead.</div>
</div>
<div class="block">Inserts the element.</div>
<dl class="notes">
<dt>Parameters:</dt>
<dd><code>index</code> - index at which to insert</dd>
<dd><code>element</code> - element to insert</dd>
<dt>Returns:</dt>
<dd>the previous element</dd>
<dt>Throws:</dt>
<dd><code>IndexOutOfBoundsException</code> - if out of range</dd>
</dl>
</section>
</li>
<li>
<section class="detail" id="size()">
<h3>size</h3>
<div class="member-signature"><span class="return-type">int</span>&nbsp;<span class="element-name">size</span>()</div>
<div class="block">Returns the number of elements.</div>
</section>
</li>
</ul>
</section>
</li>
</ul>
</section>
</main></body></html>`

const retentionHTML = `<!DOCTYPE html>
<html><body><main>
<section class="class-description" id="class-description">
<div class="type-signature"><span class="annotations">@Documented
@Retention(RUNTIME)
@Target(ANNOTATION_TYPE)
</span><span class="modifiers">public @interface </span><span class="element-name type-name-label">Retention</span></div>
<div class="block">Indicates how long annotations are retained.</div>
</section>
<section class="details">
<section class="member-details" id="annotation-interface-element-detail">
<ul class="member-list">
<li>
<section class="detail" id="value()">
<h3>value</h3>
<div class="member-signature"><span class="return-type"><a href="RetentionPolicy.html">RetentionPolicy</a></span>&nbsp;<span class="element-name">value</span></div>
<div class="block">Returns the retention policy.</div>
</section>
</li>
</ul>
</section>
</section>
</main></body></html>`

const policyHTML = `<!DOCTYPE html>
<html><body><main>
<section class="class-description" id="class-description">
<div class="block">Annotation retention policies.</div>
</section>
<section class="details">
<section class="constant-details" id="enum-constant-detail">
<ul class="member-list">
<li><section class="detail" id="SOURCE"><h3>SOURCE</h3>
<div class="member-signature"><span class="modifiers">public static final</span>&nbsp;<span class="return-type">RetentionPolicy</span>&nbsp;<span class="element-name">SOURCE</span></div>
</section></li>
<li><section class="detail" id="RUNTIME"><h3>RUNTIME</h3>
<div class="member-signature"><span class="modifiers">public static final</span>&nbsp;<span class="return-type">RetentionPolicy</span>&nbsp;<span class="element-name">RUNTIME</span></div>
</section></li>
</ul>
</section>
<section class="method-details" id="method-detail">
<ul class="member-list">
<li><section class="detail" id="values()"><h3>values</h3>
<div class="member-signature"><span class="modifiers">public static</span>&nbsp;<span class="return-type">RetentionPolicy[]</span>&nbsp;<span class="element-name">values</span>()</div>
</section></li>
</ul>
</section>
</section>
</main></body></html>`

const plainClassHTML = `<!DOCTYPE html>
<html><body><main>
<section class="class-description" id="class-description">
<div class="block">Resizable array.</div>
</section>
</main></body></html>`
